/*
Package mvm implements the Malbolge Virtual Machine.

A machine owns a fixed image of 59049 ten-trit cells. Load validates a program
text and denormalizes it into a full image; Machine then fetches, decodes and
executes one instruction per step, re-encrypting the executed cell afterwards
so that no instruction runs twice in the same form.
*/
package mvm

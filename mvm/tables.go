package mvm

// crazyTable holds the crazy operation on two trits at a time, indexed by
// [second operand pair][first operand pair]. Each entry packs two result trits.
var crazyTable = [9][9]uint16{
	{4, 3, 3, 1, 0, 0, 1, 0, 0},
	{4, 3, 5, 1, 0, 2, 1, 0, 2},
	{5, 5, 4, 2, 2, 1, 2, 2, 1},
	{4, 3, 3, 1, 0, 0, 7, 6, 6},
	{4, 3, 5, 1, 0, 2, 7, 6, 8},
	{5, 5, 4, 2, 2, 1, 8, 8, 7},
	{7, 6, 6, 7, 6, 6, 4, 3, 3},
	{7, 6, 8, 7, 6, 8, 4, 3, 5},
	{8, 8, 7, 8, 8, 7, 5, 5, 4},
}

// encryptTable maps an executed instruction (offset by '!') to its
// replacement.
const encryptTable = "5z]&gqtyfr$(we4{WP)H-Zn,[%\\3dL+Q;>U!pJS72FhOA1CB6v^=I_0/8|jsb9m<.TVac`uY*MK'X~xDl}REokN:#?G\"i@"

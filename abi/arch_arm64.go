package abi

var native = Convention{
	Arch:        "arm64",
	Instruction: "svc #0",
	Number:      "x8",
	Return:      "x0",
	Args:        []string{"x0", "x1", "x2", "x3", "x4", "x5"},
}

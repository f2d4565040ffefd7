package abi

// The sixth argument is passed in ebp, which the Go toolchain does not reserve
// as a frame pointer on 386.
var native = Convention{
	Arch:        "386",
	Instruction: "int $0x80",
	Number:      "eax",
	Return:      "eax",
	Args:        []string{"ebx", "ecx", "edx", "esi", "edi", "ebp"},
}

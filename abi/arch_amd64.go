package abi

var native = Convention{
	Arch:        "amd64",
	Instruction: "syscall",
	Number:      "rax",
	Return:      "rax",
	Args:        []string{"rdi", "rsi", "rdx", "r10", "r8", "r9"},
	Clobbers:    []string{"rcx", "r11"},
}

package main

import (
	"github.com/arrayfan/arrayfan/cmd"
)

func main() {
	cmd.Execute()
}

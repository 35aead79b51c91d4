package main

import (
	"github.com/open-salary/salary-board/cmd"
)

func main() {
	cmd.Execute()
}

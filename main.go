package main

import "github.com/enigmatic-figure/TensorMath-Node/cmd"

func main() {
	cmd.Execute()
}

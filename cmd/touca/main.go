package main

import "touca/pkg/touca"

func main() {
	touca.Main()
}

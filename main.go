package main

import "github.com/scanalign/scanalign/cmd/scanalign"

func main() { scanalign.Execute() }

// Package main provides the eavq CLI, a thin front end over the Eavquent
// attribute storage engine.
package main

func main() {
	Execute()
}

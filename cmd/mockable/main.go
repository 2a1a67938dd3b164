package main

import (
	"log"
)

func main() {
	log.SetFlags(0)

	err := Execute()
	if err != nil {
		log.Fatalln(err)
	}
}

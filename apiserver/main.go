package main

import (
	"log"
)

func main() {
	log.Println("Starting Cr8s API Server")

	apiServer, err := getAPIServerFromEnvironment()
	if err != nil {
		log.Fatal(err)
	}

	log.Fatal(apiServer.ListenAndServe())
}

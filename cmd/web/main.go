package main

import "cofoundr_backend/internal/app"

func main() {
	app.Run()
}

package main

import "tutorlux_backend/internal/app"

func main() {
	app.Run()
}

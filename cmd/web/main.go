package main

import "fitclub_backend/internal/app"

func main() {
	app.Run()
}

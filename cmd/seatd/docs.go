package main

// General API documentation for swaggo. Run `swag init -g cmd/seatd/docs.go` to regenerate ./docs.
//
// @title           seatd API
// @version         1.0
// @description     HTTP API for restaurant seating: arrivals, departures, free tables and the waiting queue.
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http

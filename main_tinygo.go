//go:build tinygo

package main

import (
	"context"

	"pocket/app"
	"pocket/hal"
)

func main() {
	_ = app.Run(context.Background(), hal.New())
}

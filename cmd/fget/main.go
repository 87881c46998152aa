// cmd/fget/main.go
package main

import (
	"fget/internal/app"
	"fget/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}

package demoserver

//go:generate swag init -g internal/demoserver/demoserver.go -o docs/swagger

// @title Soshin Demo API
// @version 0.1
// @description Interactive documentation for the form-submission workshop demo server.
// @contact.name Soshin Maintainers
// @contact.url https://github.com/raysh454/soshin
// @BasePath /

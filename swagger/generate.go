package swagger

//go:generate go run github.com/swaggo/swag/cmd/swag@v1.16.2 init -g main.go -d ../cmd/bookreview,../bookreview/internal/handler,../bookreview/internal/model,../bookreview/internal/errs -o . --outputTypes go,json --instanceName swagger

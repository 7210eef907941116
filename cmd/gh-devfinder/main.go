package main

import (
	"fmt"
	"os"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/stahnma/gh-devfinder/internal/commands"
	"github.com/stahnma/gh-devfinder/internal/config"
	lambdapkg "github.com/stahnma/gh-devfinder/internal/lambda"
)

var (
	GitSHA   string
	GitDirty string
)

func main() {
	cfg := config.FromEnvironment()
	app := commands.NewApp(cfg, GitSHA, GitDirty)

	if os.Getenv("LAMBDA_TASK_ROOT") != "" {
		awslambda.Start(lambdapkg.NewHandler(app, nil))
		return
	}

	rootCmd := app.NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

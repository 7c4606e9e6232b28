package main

import (
	"fmt"
	"time"

	"github.com/sandevgo/suppd/internal/config"
	"github.com/sandevgo/suppd/pkg/env"
	"github.com/spf13/cobra"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print a .env template with the default configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		sections := []any{
			&config.AppConfig{
				CompanyName:        "TechCorp",
				HTTPAddr:           ":8080",
				ContextLimit:       3,
				ContextTokenBudget: 1500,
			},
			&config.OpenAIConfig{
				APIKey:      "sk-replace-me",
				BaseURL:     "https://api.openai.com",
				Model:       "gpt-4o-mini",
				Temperature: 0.1,
				MaxTokens:   2000,
				Timeout:     30 * time.Second,
			},
			&config.Mem0Config{
				BaseURL: "http://localhost:8888",
				Timeout: 15 * time.Second,
			},
		}

		for _, section := range sections {
			out, err := env.MarshalEnv(section)
			if err != nil {
				return err
			}
			fmt.Print(out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(envCmd)
}

package main

import "github.com/go-playground/validator/v10"

type Config struct {
	MessageText string `env:"MESSAGE_TEXT,default=Test" validate:"required"`
	LogLevel    string `env:"LOG_LEVEL,default=info" validate:"oneof=debug info warn error"`
	Colours     bool   `env:"COLOURS,default=false"`
	Summary     bool   `env:"SUMMARY,default=true"`
	// Optional moderation dictionary; the moderated step only runs when at
	// least one word is configured.
	CensoredWords []string `env:"CENSORED_WORDS"`
	CensorChar    string   `env:"CENSOR_CHAR,default=*" validate:"required,len=1"`
}

var validate = validator.New()

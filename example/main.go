// Package main demonstrates usage of the validations package.
package main

import (
	"fmt"
	"strings"

	"github.com/dklassen/validations"
)

type SignupForm struct {
	Email    Email
	Nickname string
	Age      int
}

type Email string

func (e Email) Validate() *validations.SimpleErrors {
	return validations.Apply(
		validations.Ensure[struct{}]("must contain an @ symbol", func() bool {
			return strings.Contains(string(e), "@")
		}),
	)
}

func (f SignupForm) Validate() *validations.SimpleErrors {
	return validations.Apply(
		validations.NotBlank[struct{}]("nickname", f.Nickname),
		validations.MaxLen[struct{}]("nickname", f.Nickname, 32),
		validations.Min[struct{}]("age", f.Age, 13),
		validations.ValidField[struct{}]("email", f.Email),
	)
}

func main() {
	form := SignupForm{
		Email:    "rcohle",
		Nickname: "",
		Age:      9,
	}

	errs := form.Validate()
	if errs == nil {
		fmt.Println("signup form is valid")
		return
	}

	for _, err := range errs.Base() {
		fmt.Println("form:", err.Message())
	}
	for _, field := range []string{"nickname", "age", "email"} {
		nested, ok := errs.Field(field)
		if !ok {
			continue
		}
		for _, err := range nested.Base() {
			fmt.Printf("%s: %s\n", field, err.Message())
		}
	}

	// Errors generated by hand compose the same way. Details carry
	// structured context alongside the message.
	manual := validations.NewErrors[[]rune]()
	manual.AddFieldError("number", validations.WithDetails("has invalid characters", []rune{'x', 't'}))
	if nested, ok := manual.Field("number"); ok {
		if details, ok := nested.Base()[0].Details(); ok {
			fmt.Printf("number: %s (%q)\n", nested.Base()[0].Message(), string(details))
		}
	}
}

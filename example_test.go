package placeholders_test

import (
	"fmt"
	"time"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/placeholders"
)

func ExampleCompile() {
	msg := placeholders.MustCompile(language.English, "Hello, {name}!")
	out, _ := placeholders.Of(msg).With("name", "World").Apply()
	fmt.Println(out)
	// Output: Hello, World!
}

func ExampleContext_ApplyTo() {
	greeting := placeholders.MustCompile(language.English, "Welcome back, {name}!")
	farewell := placeholders.MustCompile(language.English, "See you, {name}!")

	ctx := placeholders.Create().With("name", "Ann")
	out1, _ := ctx.ApplyTo(greeting)
	out2, _ := ctx.ApplyTo(farewell)
	fmt.Println(out1)
	fmt.Println(out2)
	// Output:
	// Welcome back, Ann!
	// See you, Ann!
}

func ExampleRegister() {
	type player struct {
		name  string
		level int
	}

	engine := placeholders.New()
	placeholders.Register(engine.Registry(), "name", func(p player, _ *placeholders.MessageField, _ *placeholders.Context) any {
		return p.name
	})
	placeholders.Register(engine.Registry(), "level", func(p player, _ *placeholders.MessageField, _ *placeholders.Context) any {
		return p.level
	})

	msg := placeholders.MustCompile(language.English, "{p.name} reached level {p.level}")
	out, _ := engine.Of(msg).With("p", player{name: "Ann", level: 12}).Apply()
	fmt.Println(out)
	// Output: Ann reached level 12
}

func ExampleCompile_plural() {
	msg := placeholders.MustCompile(language.English, "You have {n} {apple,apples#n}.")
	ctx := placeholders.Create().With("n", 1)
	one, _ := ctx.ApplyTo(msg)
	many, _ := placeholders.Create().With("n", 5).ApplyTo(msg)
	fmt.Println(one)
	fmt.Println(many)
	// Output:
	// You have 1 apple.
	// You have 5 apples.
}

func ExampleCompile_duration() {
	msg := placeholders.MustCompile(language.English, "expires in {ttl(m)}")
	out, _ := placeholders.Of(msg).With("ttl", 26*time.Hour+30*time.Minute).Apply()
	fmt.Println(out)
	// Output: expires in 1d2h30m
}

func ExampleOfWithMode() {
	msg := placeholders.MustCompile(language.English, "Hello, {name|stranger}!")
	out, _ := placeholders.OfWithMode(msg, placeholders.Fallback).Apply()
	fmt.Println(out)
	// Output: Hello, stranger!
}

func ExampleContext_Value() {
	ctx := placeholders.Create().With("ttl", 90*time.Minute)
	hours, ok, err := placeholders.Value[int64](ctx, "ttl.hours")
	fmt.Println(hours, ok, err)
	// Output: 1 true <nil>
}

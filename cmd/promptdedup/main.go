package main

import "github.com/cleitonmarx/symbiont-prompt-dedup/internal/app"

func main() {
	err := app.NewPromptDedupApp().
		Introspect(&app.ConfigReportIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}

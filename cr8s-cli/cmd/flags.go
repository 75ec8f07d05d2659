package main

const (
	flagHours     = "hours"
	flagTemplates = "templates"
	flagTo        = "to"
)

package workflow

// Static fixtures for the product-definition workflow. Everything here is
// canned data; the upload endpoints echo the caller's payload back instead.

type Persona struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Occupation  string   `json:"occupation"`
	Description string   `json:"description"`
	Goals       []string `json:"goals"`
	PainPoints  []string `json:"pain_points"`
}

type BrandDesign struct {
	PrimaryColor   string   `json:"primary_color"`
	SecondaryColor string   `json:"secondary_color"`
	Palette        []string `json:"palette"`
	FontFamily     string   `json:"font_family"`
	Tone           string   `json:"tone"`
}

type ThirdPartyAPI struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	DocsURL     string `json:"docs_url"`
}

type Provider struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Service string `json:"service"`
	Status  string `json:"status"`
}

const prdDocument = `# Product Requirements Document

## Overview
TaskFlow is a lightweight task management tool for small remote teams.

## Goals
- Let teams capture, assign and track tasks without setup overhead.
- Integrate with the communication tools teams already use.

## Key Features
1. Task boards with drag-and-drop ordering
2. Mentions and notifications
3. Weekly digest emails
4. Third-party calendar sync
`

var personaFixtures = []Persona{
	{
		ID:          1,
		Name:        "Remote Team Lead",
		Occupation:  "Engineering Manager",
		Description: "Coordinates a distributed team across four time zones.",
		Goals:       []string{"See team workload at a glance", "Reduce status meetings"},
		PainPoints:  []string{"Scattered task lists", "Unclear ownership"},
	},
	{
		ID:          2,
		Name:        "Freelance Designer",
		Occupation:  "Product Designer",
		Description: "Juggles multiple client projects with overlapping deadlines.",
		Goals:       []string{"Track deliverables per client", "Get paid on time"},
		PainPoints:  []string{"Context switching", "Chasing feedback"},
	},
	{
		ID:          3,
		Name:        "Startup Founder",
		Occupation:  "CEO",
		Description: "Runs product, sales and hiring from the same inbox.",
		Goals:       []string{"Prioritise ruthlessly", "Delegate without losing visibility"},
		PainPoints:  []string{"Too many tools", "No single source of truth"},
	},
}

var brandDesignFixture = BrandDesign{
	PrimaryColor:   "#2563EB",
	SecondaryColor: "#F59E0B",
	Palette:        []string{"#2563EB", "#F59E0B", "#10B981", "#1F2937"},
	FontFamily:     "Inter",
	Tone:           "friendly, confident, concise",
}

var thirdPartyAPIFixtures = []ThirdPartyAPI{
	{ID: 1, Name: "Stripe", Category: "payments", Description: "Payment processing and billing.", DocsURL: "https://stripe.com/docs/api"},
	{ID: 2, Name: "SendGrid", Category: "email", Description: "Transactional and digest email delivery.", DocsURL: "https://docs.sendgrid.com"},
	{ID: 3, Name: "Slack", Category: "messaging", Description: "Team notifications and mentions.", DocsURL: "https://api.slack.com"},
	{ID: 4, Name: "Google Calendar", Category: "calendar", Description: "Two-way calendar sync.", DocsURL: "https://developers.google.com/calendar"},
}

var providerFixtures = []Provider{
	{ID: 1, Name: "AWS", Service: "hosting", Status: "available"},
	{ID: 2, Name: "Google Cloud", Service: "hosting", Status: "available"},
	{ID: 3, Name: "Auth0", Service: "identity", Status: "available"},
	{ID: 4, Name: "Twilio", Service: "sms", Status: "waitlist"},
}

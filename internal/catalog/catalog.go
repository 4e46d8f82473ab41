// Habbit - Habit Onboarding Flow
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package catalog holds the fixed product content shown by the onboarding
// flow: carousel slides, question options, paywall plans and copy.
package catalog

import (
	"fmt"

	"github.com/cloud-exit/habbit/internal/flow"
)

// Slide is one page of the onboarding carousel.
type Slide struct {
	Title    string
	Subtitle string
}

// Option is a selectable answer to a question.
type Option struct {
	ID    string // stored in flow.Answers
	Title string
	Desc  string
	Emoji string
}

// Question describes one question screen.
type Question struct {
	Key     flow.Question
	Prompt  string
	Options []Option
}

// Plan is a paywall subscription plan.
type Plan struct {
	ID    string
	Title string
	Price string
	Per   string
	Badge string // e.g. "Most Popular"
}

// Slides defines the onboarding carousel.
var Slides = []Slide{
	{Title: "Master your daily routine", Subtitle: "Consistently hit your goals with Habbit's intelligent reminders and seamless tracking."},
	{Title: "Visualize your growth", Subtitle: "See how far you've come with intuitive charts and motivating streak counters."},
	{Title: "Find your daily drive", Subtitle: "Connect with a supportive community and crush your targets together."},
}

// AllQuestions defines the questionnaire in the order it is asked.
var AllQuestions = []Question{
	{
		Key:    flow.QuestionEnergy,
		Prompt: "When do you have the most energy?",
		Options: []Option{
			{ID: "early_bird", Title: "Morning", Desc: "Start fresh & early", Emoji: "☀️"},
			{ID: "night_owl", Title: "Night", Desc: "Focus after sunset", Emoji: "🌙"},
			{ID: "flexible", Title: "Flexible", Desc: "Whenever I can", Emoji: "⚡"},
			{ID: "low_energy", Title: "Recharge", Desc: "Need energy boost", Emoji: "🪫"},
		},
	},
	{
		Key:    flow.QuestionTracking,
		Prompt: "How do you track progress?",
		Options: []Option{
			{ID: "graphs", Title: "Visual Analytics", Desc: "See the big picture", Emoji: "📊"},
			{ID: "check_ins", Title: "Checklist Mode", Desc: "Simple & Fast", Emoji: "✅"},
			{ID: "streaks", Title: "Streak Keeper", Desc: "Don't break the chain", Emoji: "🔥"},
			{ID: "not_sure", Title: "Undecided", Desc: "I'll decide later", Emoji: "🤔"},
		},
	},
	{
		Key:    flow.QuestionGoal,
		Prompt: "What brings you here?",
		Options: []Option{
			{ID: "good_habits", Title: "Start Fresh", Desc: "Build new routines", Emoji: "🌱"},
			{ID: "bad_habits", Title: "Break Free", Desc: "Quit bad habits", Emoji: "🗑️"},
			{ID: "both", Title: "Total Reset", Desc: "Reinvent yourself", Emoji: "🎯"},
			{ID: "not_sure", Title: "Undecided", Desc: "I'll decide later", Emoji: "🤔"},
		},
	},
	{
		Key:    flow.QuestionBarrier,
		Prompt: "What usually stops you?",
		Options: []Option{
			{ID: "time", Title: "Lack of Time", Desc: "Too busy", Emoji: "⏰"},
			{ID: "motivation", Title: "No Motivation", Desc: "Hard to keep going", Emoji: "🌧️"},
			{ID: "distraction", Title: "Distractions", Desc: "Easily sidetracked", Emoji: "📱"},
			{ID: "start", Title: "Getting Started", Desc: "Procrastination", Emoji: "🧗"},
		},
	},
	{
		Key:    flow.QuestionMainGoal,
		Prompt: "What is your main goal?",
		Options: []Option{
			{ID: "productivity", Title: "Maximize productivity", Desc: "Get more done", Emoji: "⚡"},
			{ID: "energy", Title: "Revitalize energy", Desc: "Feel alive", Emoji: "🔋"},
			{ID: "mindfulness", Title: "Mindfulness", Desc: "Inner peace", Emoji: "🧘"},
			{ID: "health", Title: "Healthier living", Desc: "Body & mind", Emoji: "🍎"},
		},
	},
}

// Plans defines the paywall plans. The first one matches flow.DefaultPlan.
var Plans = []Plan{
	{ID: "yearly", Title: "Yearly", Price: "$29.99", Per: "/yr", Badge: "Most Popular"},
	{ID: "monthly", Title: "Monthly", Price: "$4.99", Per: "/mo"},
	{ID: "lifetime", Title: "Lifetime", Price: "$99.99", Per: "one-time", Badge: "Best Value"},
}

// PaywallFeatures lists what the premium plans unlock.
var PaywallFeatures = []string{
	"Unlimited Habits Tracking",
	"Advanced Analytics & Charts",
	"Secure Cloud Backup",
	"Personalized Assessments",
	"Exclusive App Icons",
}

// ContractClauses are the commitments signed on the what-can-do screen.
var ContractClauses = []string{
	"I commit to prioritizing my essential tasks and eliminating distractions.",
	"I will actively explore the boundaries of my potential every day.",
	"I will remain curious, open-minded, and willing to learn from failure.",
	"I will confront and address my weaknesses to turn them into strengths.",
	"I will stay true to my core values and who I am.",
}

// HabitTimes are the suggested times of day for a new habit.
var HabitTimes = []string{
	"After waking up",
	"With breakfast",
	"During lunch",
	"In the evening",
	"Before bed",
}

// GetQuestion returns the question for key, or nil.
func GetQuestion(key flow.Question) *Question {
	for i := range AllQuestions {
		if AllQuestions[i].Key == key {
			return &AllQuestions[i]
		}
	}
	return nil
}

// Options returns the options for key.
func Options(key flow.Question) []Option {
	if q := GetQuestion(key); q != nil {
		return q.Options
	}
	return nil
}

// GetOption returns the option id of question key, or nil.
func GetOption(key flow.Question, id string) *Option {
	q := GetQuestion(key)
	if q == nil {
		return nil
	}
	for i := range q.Options {
		if q.Options[i].ID == id {
			return &q.Options[i]
		}
	}
	return nil
}

// ValidateOption returns an error when id is not an option of key.
func ValidateOption(key flow.Question, id string) error {
	if GetQuestion(key) == nil {
		return fmt.Errorf("unknown question %q", key)
	}
	if GetOption(key, id) == nil {
		return fmt.Errorf("unknown option %q for %s (want one of %v)", id, key, OptionIDs(key))
	}
	return nil
}

// OptionIDs lists the option ids of key in display order.
func OptionIDs(key flow.Question) []string {
	var ids []string
	for _, o := range Options(key) {
		ids = append(ids, o.ID)
	}
	return ids
}

// GetPlan returns the plan by id, or nil.
func GetPlan(id string) *Plan {
	for i := range Plans {
		if Plans[i].ID == id {
			return &Plans[i]
		}
	}
	return nil
}

// PlanIndex returns the position of plan id in Plans, or 0.
func PlanIndex(id string) int {
	for i := range Plans {
		if Plans[i].ID == id {
			return i
		}
	}
	return 0
}

// OptionIndex returns the position of option id in key's options, or 0.
func OptionIndex(key flow.Question, id string) int {
	for i, o := range Options(key) {
		if o.ID == id {
			return i
		}
	}
	return 0
}

// CallToAction is the paywall button label for a plan.
func CallToAction(planID string) string {
	if planID == "lifetime" {
		return "Get Lifetime Access"
	}
	return "Start 7-Day Free Trial"
}

// Copy is the fixed text of one screen.
type Copy struct {
	Title  string
	Body   string
	Action string // primary button label
}

// NewsFeature is one bullet on the news screen.
type NewsFeature struct {
	Title string
	Desc  string
}

// NewsFeatures are the notification benefits listed on the news screen.
var NewsFeatures = []NewsFeature{
	{Title: "Low energy", Desc: "Get reminders for your habits when you have most energy."},
	{Title: "Stay on track", Desc: "Keep your streak alive with timely nudges."},
}

// MissingAnswerMessage is shown when a question is left unanswered.
const MissingAnswerMessage = "Please select an option"

var screenCopy = map[flow.Screen]Copy{
	flow.Welcome:     {Title: "Welcome to habbit.", Body: "Tiny changes. Remarkable results.", Action: "Let's go!"},
	flow.Onboarding:  {Title: "Master your routine.", Body: "Consistency is the bridge between goals and accomplishment. We help you build it.", Action: "Start Journey"},
	flow.NameInput:   {Title: "How should we call you?", Body: "Your journey belongs to you. Let's make it personal.", Action: "Continue"},
	flow.WelcomeUser: {Title: "Nice to meet you, %s.", Body: "Let's personalize your path.", Action: "Continue"},
	flow.Tailoring:   {Title: "Personalizing your plan", Body: "Matching Habbit to your answers.", Action: "See My Plan"},
	flow.News:        {Title: "Don't Miss Out.", Body: "Our smart notifications can double your success rate by keeping you accountable.", Action: "Enable Notifications"},
	flow.BadNewsStat: {Title: "Great Job.", Body: "You are all set.", Action: "Start the Engine"},
	flow.WhatCanDo:   {Title: "Contract", Body: "I, %s, commit to:", Action: "I Agree"},
	flow.Solution:    {Title: "Unlock Full Potential", Body: "Choose the plan that keeps you going."},
	flow.Dashboard:   {Title: "Hello, %s", Body: "You don't have any habits yet.", Action: "+ Create New Habit"},
	flow.CreateHabit: {Title: "New Habit", Body: "What will you do, and when?", Action: "Save Habit"},
}

// Text returns the copy of screen s. Question screens use the question
// prompt as their title.
func Text(s flow.Screen) Copy {
	if q, ok := flow.QuestionFor(s); ok {
		if question := GetQuestion(q); question != nil {
			return Copy{Title: question.Prompt, Body: "Pick the one that fits you best.", Action: "Continue"}
		}
	}
	return screenCopy[s]
}

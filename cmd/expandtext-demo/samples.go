package main

import "strings"

var articleText = strings.Join([]string{
	"Terminals render text on a grid of fixed-size cells, which makes them",
	"a surprisingly good fit for demonstrating collapsible text: every line",
	"is exactly one row tall, so the height arithmetic is visible to the",
	"naked eye.",
	"",
	"This article widget shows a handful of lines while collapsed. The",
	"indicator row below it reports that more content is hidden; activating",
	"it animates the container open until the full text fits, then animates",
	"it closed again on the next activation.",
	"",
	"While the transition runs the text dims slightly and input on the",
	"widget is swallowed, so a rapid double press cannot corrupt the",
	"animation. Resize the terminal to re-wrap the text at the new width.",
	"",
	"The second pane holds a list of notes sharing a single widget",
	"instance. Each note remembers whether it was left expanded, the same",
	"way a recycled list cell would.",
}, "\n")

type listItem struct {
	title string
	body  string
}

var listItems = []listItem{
	{
		title: "On wrapping",
		body: strings.Join([]string{
			"Greedy word wrap places each word on the current line while it",
			"fits and starts a new line when it does not. Words wider than",
			"the whole line are broken at the cell boundary. This is the",
			"same discipline most terminal pagers use, and it keeps the",
			"measurement pass cheap enough to run on every content change",
			"without caching.",
		}, " "),
	},
	{
		title: "On animation",
		body: strings.Join([]string{
			"The height transition interpolates the container between its",
			"collapsed and expanded heights, one frame per tick. The text is",
			"clamped a fixed margin short of the container bottom so the",
			"indicator row never gets painted over. When the run completes",
			"the final height persists as the container's layout height,",
			"which is what keeps the widget from snapping back.",
		}, " "),
	},
	{
		title: "On recycling",
		body: strings.Join([]string{
			"A list that recycles one widget across many rows cannot keep",
			"the expanded flag in the widget itself. The shared store keeps",
			"one flag per position; rebinding reads the flag back before",
			"display, so scrolling away and back preserves each row's state",
			"without animating.",
		}, " "),
	},
	{
		title: "Short note",
		body:  "Nothing to collapse here. The indicator stays hidden for content that already fits.",
	},
}

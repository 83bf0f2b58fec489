package slack

import (
	"fmt"
	"unicode/utf8"

	goslack "github.com/slack-go/slack"
)

const maxBlockTextLength = 2900

var statusEmoji = map[string]string{
	"completed": ":white_check_mark:",
	"failed":    ":x:",
	"timed_out": ":hourglass:",
	"cancelled": ":no_entry_sign:",
}

var statusLabel = map[string]string{
	"completed": "Deliberation Complete",
	"failed":    "Deliberation Failed",
	"timed_out": "Deliberation Timed Out",
	"cancelled": "Deliberation Cancelled",
}

func deliberationURL(deliberationID, dashboardURL string) string {
	return fmt.Sprintf("%s/deliberations/%s", dashboardURL, deliberationID)
}

// BuildTerminalMessage creates Block Kit blocks for a terminal deliberation
// notification: status header, task line, synthesis excerpt when present,
// error message when not, and a dashboard link button.
func BuildTerminalMessage(input DeliberationCompletedInput, dashboardURL string) []goslack.Block {
	emoji := statusEmoji[input.Status]
	if emoji == "" {
		emoji = ":question:"
	}
	label := statusLabel[input.Status]
	if label == "" {
		label = "Deliberation " + input.Status
	}

	headerText := fmt.Sprintf("%s *%s*", emoji, label)
	if input.Task != "" {
		headerText += fmt.Sprintf("\n> %s", truncateForSlack(input.Task))
	}

	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, headerText, false, false),
			nil, nil,
		),
	}

	if input.Status == "completed" && input.Synthesis != "" {
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, truncateForSlack(input.Synthesis), false, false),
			nil, nil,
		))
	} else if input.Status != "completed" && input.ErrorMessage != "" {
		errText := fmt.Sprintf("*Error:*\n%s", truncateForSlack(input.ErrorMessage))
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, errText, false, false),
			nil, nil,
		))
	}

	url := deliberationURL(input.DeliberationID, dashboardURL)
	buttonText := "View Synthesis"
	if input.Status != "completed" {
		buttonText = "View Details"
	}

	btn := goslack.NewButtonBlockElement("", "", goslack.NewTextBlockObject(goslack.PlainTextType, buttonText, false, false))
	btn.URL = url
	blocks = append(blocks, goslack.NewActionBlock("", btn))

	return blocks
}

func truncateForSlack(text string) string {
	if utf8.RuneCountInString(text) <= maxBlockTextLength {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxBlockTextLength]) + "\n\n_... (truncated — view the full synthesis in the dashboard)_"
}

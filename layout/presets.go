// layout/presets.go
//
// Built-in schemas for the watch app screens. These are the layouts the
// session screens resolve on every render; authors can replace any of them
// with a YAML schema via LoadSchemaFile.
package layout

// MatchScreen is the live scoreboard: a set-score header, a fill body split
// into the two team point panels, and a footer with the undo control.
func MatchScreen() Schema {
	return Schema{
		Sections: map[string]SectionSpec{
			"header": {Top: 0, Height: "18%"},
			"body":   {After: "header", Gap: "1%", Height: KeywordFill},
			"footer": {Bottom: 0, Height: "14%"},
		},
		Elements: map[string]ElementSpec{
			"setScore": {Section: "header", Y: KeywordCenter, Width: "60%", Height: "70%", Align: AlignCenter},
			"teamAPanel": {
				Section: "body", X: 0, Y: 0,
				Width: "48%", Height: KeywordFill,
			},
			"teamBPanel": {
				Section: "body", Y: 0,
				Width: "48%", Height: KeywordFill, Align: AlignRight,
			},
			"teamAPoints": {Section: "body", X: "8%", Y: "30%", Width: "32%", Height: "40%"},
			"teamBPoints": {Section: "body", X: "60%", Y: "30%", Width: "32%", Height: "40%"},
			"undoButton":  {Section: "footer", Y: KeywordCenter, Width: "40%", Height: "80%", Align: AlignCenter},
		},
	}
}

// MenuScreen is the start screen: title, a fill menu list, and a hint footer.
func MenuScreen() Schema {
	return Schema{
		Sections: map[string]SectionSpec{
			"title": {Top: "4%", Height: "16%"},
			"menu":  {After: "title", Gap: "2%", Height: KeywordFill},
			"hint":  {Bottom: 0, Height: "10%"},
		},
		Elements: map[string]ElementSpec{
			"titleLabel":  {Section: "title", Y: KeywordCenter, Width: "80%", Height: "60%", Align: AlignCenter},
			"newMatch":    {Section: "menu", Y: "6%", Width: "72%", Height: "24%", Align: AlignCenter},
			"resumeMatch": {Section: "menu", Y: "38%", Width: "72%", Height: "24%", Align: AlignCenter},
			"historyItem": {Section: "menu", Y: "70%", Width: "72%", Height: "24%", Align: AlignCenter},
		},
	}
}

// HistoryScreen lists finished matches: header plus a fill list region whose
// rows the widget collaborator lays out itself.
func HistoryScreen() Schema {
	return Schema{
		Sections: map[string]SectionSpec{
			"header": {Top: 0, Height: "16%"},
			"list":   {After: "header", Height: KeywordFill},
			"footer": {Bottom: 0, Height: "12%"},
		},
		Elements: map[string]ElementSpec{
			"headerLabel": {Section: "header", Y: KeywordCenter, Width: "70%", Height: "60%", Align: AlignCenter},
			"clearButton": {Section: "footer", Y: KeywordCenter, Width: "44%", Height: "76%", Align: AlignCenter},
		},
	}
}

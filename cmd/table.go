package cmd

import (
	"bytes"

	"github.com/mgutz/ansi"
	"github.com/rpifan/rpifan/cmd/global"
	"github.com/rpifan/rpifan/internal/ui"
	"github.com/tomlazar/table"
)

func printTable(headers []string, rows [][]string) {
	tab := table.Table{
		Headers: headers,
		Rows:    rows,
	}
	var buf bytes.Buffer
	err := tab.WriteTable(&buf, &table.Config{
		ShowIndex:       false,
		Color:           !global.NoColor,
		AlternateColors: true,
		TitleColorCode:  ansi.ColorCode("white+buf"),
		AltColorCodes: []string{
			ansi.ColorCode("white"),
			ansi.ColorCode("white:236"),
		},
	})
	if err != nil {
		ui.Fatal("Error printing table: %v", err)
	}
	ui.Printfln("%s", buf.String())
}

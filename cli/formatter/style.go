package formatter

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// StyleWithoutGraphics is a borderless box style:
//
//	KEY               VALUE
//	package_name      'widgets'
//	install_requires  ('requests', 'click')
var StyleWithoutGraphics = table.BoxStyle{
	BottomLeft:       " ",
	BottomRight:      " ",
	BottomSeparator:  " ",
	EmptySeparator:   text.RepeatAndTrim(" ", text.RuneWidthWithoutEscSequences(" ")),
	Left:             " ",
	LeftSeparator:    " ",
	MiddleHorizontal: " ",
	MiddleSeparator:  " ",
	MiddleVertical:   " ",
	PaddingLeft:      " ",
	PaddingRight:     " ",
	PageSeparator:    "\n",
	Right:            " ",
	RightSeparator:   " ",
	TopLeft:          " ",
	TopRight:         " ",
	TopSeparator:     " ",
	UnfinishedRow:    "  ",
}

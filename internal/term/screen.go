package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
)

// Open initialises the terminal with mouse motion reporting and no cursor.
// Callers must Fini the returned screen.
func Open() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: new screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("term: init screen: %w", err)
	}
	s.EnableMouse(tcell.MouseMotionEvents)
	s.HideCursor()
	return s, nil
}

// CheckSize warns when the terminal cannot show the whole window.
func CheckSize(s tcell.Screen, windowW, windowH int, scale Scale) {
	cols, rows := s.Size()
	needCols := (windowW + scale.ColumnPixels - 1) / scale.ColumnPixels
	needRows := (windowH + scale.RowPixels - 1) / scale.RowPixels
	if cols < needCols || rows < needRows {
		log.Warn().
			Int("cols", cols).Int("rows", rows).
			Int("needCols", needCols).Int("needRows", needRows).
			Msg("terminal smaller than the game window; the board will be clipped")
	}
}

package entity

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-service/internal/apperror"
)

const MinBoardSize = 3

// Board is a square grid of marks. Its size is fixed at creation and a cell,
// once marked, is never changed again.
type Board struct {
	size  int
	cells [][]Mark
}

type boardJSON struct {
	Size int      `json:"size"`
	Rows [][]Mark `json:"rows"`
}

// NewBoard creates an empty size x size board.
func NewBoard(size int) (*Board, error) {
	if size < MinBoardSize {
		return nil, fmt.Errorf("%w: minimum board size is %d, got %d", apperror.ErrInvalidConfiguration, MinBoardSize, size)
	}

	cells := make([][]Mark, size)
	for i := range cells {
		cells[i] = make([]Mark, size)
		for j := range cells[i] {
			cells[i][j] = MarkEmpty
		}
	}

	return &Board{size: size, cells: cells}, nil
}

func (that *Board) Size() int {
	return that.size
}

// PlaceMark puts mark on the empty cell at row/column.
func (that *Board) PlaceMark(row, column int, mark Mark) error {
	if !that.inBounds(row) || !that.inBounds(column) {
		return fmt.Errorf("%w: row %d, column %d on a %dx%d board", apperror.ErrOutOfBounds, row, column, that.size, that.size)
	}

	if that.cells[row][column] != MarkEmpty {
		return fmt.Errorf("%w: row %d, column %d", apperror.ErrCellOccupied, row, column)
	}

	if !mark.IsPlayable() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	that.cells[row][column] = mark

	return nil
}

func (that *Board) MarkAt(row, column int) (Mark, error) {
	if !that.inBounds(row) || !that.inBounds(column) {
		return MarkEmpty, fmt.Errorf("%w: row %d, column %d", apperror.ErrOutOfBounds, row, column)
	}

	return that.cells[row][column], nil
}

// IsFull reports whether no empty cell is left.
func (that *Board) IsFull() bool {
	for _, row := range that.cells {
		for _, cell := range row {
			if cell == MarkEmpty {
				return false
			}
		}
	}

	return true
}

// HasWinningLine reports whether a full row, column or diagonal holds the same
// non-empty mark. Rows are checked first, then columns, then both diagonals.
func (that *Board) HasWinningLine() bool {
	last := that.size - 1

	for i := 0; i < that.size; i++ {
		if that.isWinningLine(func(j int) Mark { return that.cells[i][j] }) {
			return true
		}
	}

	for j := 0; j < that.size; j++ {
		if that.isWinningLine(func(i int) Mark { return that.cells[i][j] }) {
			return true
		}
	}

	if that.isWinningLine(func(i int) Mark { return that.cells[i][i] }) {
		return true
	}

	return that.isWinningLine(func(i int) Mark { return that.cells[i][last-i] })
}

// Snapshot returns a copy of the grid, safe to hand out.
func (that *Board) Snapshot() [][]Mark {
	rows := make([][]Mark, that.size)
	for i, row := range that.cells {
		rows[i] = make([]Mark, len(row))
		copy(rows[i], row)
	}

	return rows
}

func (that *Board) Clone() *Board {
	return &Board{size: that.size, cells: that.Snapshot()}
}

func (that *Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(boardJSON{Size: that.size, Rows: that.cells})
}

func (that *Board) UnmarshalJSON(data []byte) error {
	var raw boardJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal board: %w", err)
	}

	if raw.Size < MinBoardSize || len(raw.Rows) != raw.Size {
		return fmt.Errorf("%w: board of size %d with %d rows", apperror.ErrInvalidConfiguration, raw.Size, len(raw.Rows))
	}

	for i, row := range raw.Rows {
		if len(row) != raw.Size {
			return fmt.Errorf("%w: row %d has %d cells", apperror.ErrInvalidConfiguration, i, len(row))
		}

		for _, cell := range row {
			if !cell.IsValid() {
				return fmt.Errorf("%w: %q in row %d", apperror.ErrInvalidMark, cell, i)
			}
		}
	}

	that.size = raw.Size
	that.cells = raw.Rows

	return nil
}

func (that *Board) inBounds(index int) bool {
	return index >= 0 && index < that.size
}

func (that *Board) isWinningLine(at func(int) Mark) bool {
	first := at(0)
	if first == MarkEmpty {
		return false
	}

	for k := 1; k < that.size; k++ {
		if at(k) != first {
			return false
		}
	}

	return true
}

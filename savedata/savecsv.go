package savedata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
)

var ErrNotOpen = errors.New("csv not initialised")

// SaveCSV buffers the rows of one chart and writes them on close.
type SaveCSV struct {
	Name string
	Fp   *os.File
	Data [][]string
}

func (mycsv *SaveCSV) NewCSV(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create csv %s: %w", filename, err)
	}
	mycsv.Name = filename
	mycsv.Fp = file
	mycsv.Data = make([][]string, 0)
	return nil
}

func (mycsv *SaveCSV) CloseCSV() error {
	if mycsv.Fp == nil {
		return ErrNotOpen
	}
	w := csv.NewWriter(mycsv.Fp)
	if err := w.WriteAll(mycsv.Data); err != nil {
		mycsv.Fp.Close()
		mycsv.Fp = nil
		return fmt.Errorf("write csv %s: %w", mycsv.Name, err)
	}
	err := mycsv.Fp.Close()
	mycsv.Fp = nil
	return err
}

// Append one row to csv data, no actual write
func (mycsv *SaveCSV) AddOneToCSV(data []string) error {
	if mycsv.Fp == nil {
		return ErrNotOpen
	}
	mycsv.Data = append(mycsv.Data, data)
	return nil
}

// WriteCSV writes all rows to filename in one go.
func WriteCSV(filename string, rows [][]string) error {
	c := &SaveCSV{}
	if err := c.NewCSV(filename); err != nil {
		return err
	}
	for _, r := range rows {
		if err := c.AddOneToCSV(r); err != nil {
			return err
		}
	}
	return c.CloseCSV()
}

package entity

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// GİB invoice numbers are SERIES(3) + YEAR(4) + SEQUENCE(9), 16 characters in total.
const (
	invoiceSeriesLen   = 3
	invoiceNumberLen   = 16
	invoiceSequenceMax = 999999999
	DefaultSeries      = "FAT"
)

var (
	seriesRe         = regexp.MustCompile(`^[A-Z0-9]{3}$`)
	trailingDigitsRe = regexp.MustCompile(`(\d+)$`)
)

func ValidateInvoiceSeries(series string) error {
	if !seriesRe.MatchString(series) {
		return fmt.Errorf("%w: series must be 3 uppercase letters or digits", ErrInvalidArgument)
	}

	return nil
}

func FormatInvoiceNumber(series string, year, seq int) (string, error) {
	err := ValidateInvoiceSeries(series)
	if err != nil {
		return "", err
	}

	if seq < 1 || seq > invoiceSequenceMax {
		return "", fmt.Errorf("%w: sequence %d out of range", ErrInvalidArgument, seq)
	}

	return fmt.Sprintf("%s%04d%09d", series, year, seq), nil
}

// InvoiceSequence returns the sequence part of a number issued in the given series and year.
// Numbers of the older dashed form (FAT-2025-0001) contribute their trailing digits.
func InvoiceSequence(number, series string, year int) (int, bool) {
	prefix := fmt.Sprintf("%s%04d", series, year)

	if len(number) == invoiceNumberLen {
		if !strings.HasPrefix(number, prefix) {
			return 0, false
		}

		seq, err := strconv.Atoi(number[len(prefix):])
		if err != nil || seq < 1 {
			return 0, false
		}

		return seq, true
	}

	legacyPrefix := fmt.Sprintf("%s-%04d-", series, year)
	if !strings.HasPrefix(number, legacyPrefix) {
		return 0, false
	}

	m := trailingDigitsRe.FindStringSubmatch(number)
	if m == nil {
		return 0, false
	}

	seq, err := strconv.Atoi(m[1])
	if err != nil || seq < 1 {
		return 0, false
	}

	return seq, true
}

// NextInvoiceNumber is the max sequence among existing numbers plus one.
func NextInvoiceNumber(series string, year int, existing []string) (string, error) {
	err := ValidateInvoiceSeries(series)
	if err != nil {
		return "", err
	}

	maxSeq := 0

	for _, n := range existing {
		seq, ok := InvoiceSequence(n, series, year)
		if ok && seq > maxSeq {
			maxSeq = seq
		}
	}

	return FormatInvoiceNumber(series, year, maxSeq+1)
}

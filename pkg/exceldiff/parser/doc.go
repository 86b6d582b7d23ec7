// Package parser provides Excel file parsing utilities.
package parser

/*
Package table loads DFA definitions from transition tables, the spreadsheet layout
the simulator has always accepted:

	          |       | 0  | 1
	    '-->  | S0    | S0 | S1
	    *     | S1    | S0 | S1

Row 0 is a free title row. Row 1 carries the alphabet from column 2 onward. Every
following row has markers in column 0 ("-->" for the start state, "*" for accepting
states, both may share a cell), the state name in column 1 and the target state for
each symbol in the remaining columns. Spreadsheets that would read "-->" as a
formula may escape it as "'-->".

Every cell is read as a trimmed string, so a symbol written 1 is the symbol "1".
Empty target cells are absent transitions and are reported by validation.

CSV files are read with encoding/csv; XLSX workbooks with excelize.
*/
package table

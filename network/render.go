package network

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Render writes one name per line followed by the visited count.
func (r *NetworkReport) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, name := range r.Discovered {
		fmt.Fprintln(bw, name)
	}
	fmt.Fprintf(bw, "Number of vertices visited: %d\n", r.Count)

	return bw.Flush()
}

// Render writes the person header and one line per reported level, each
// followed by a blank line.
func (r *ConnectionsReport) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Network of: %s\n", r.Person)
	for _, d := range r.Degrees {
		fmt.Fprintf(bw, "%s connections [%d in total]: [%s]\n\n",
			ordinal(d.Level), d.Size(), strings.Join(d.Members, " "))
	}

	return bw.Flush()
}

// Render writes the confirmation line followed by the connections view.
func (r *ConnectReport) Render(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Connected %s and %s.\n", r.PersonA, r.PersonB); err != nil {
		return err
	}

	return r.Connections.Render(w)
}

// ordinal formats n as 1st, 2nd, 3rd, 4th, ... 11th, 12th, 13th, 21st.
func ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}

	return strconv.Itoa(n) + suffix
}

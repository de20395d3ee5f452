package shell

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// readLine returns the next input line of any length without its line ending,
// or io.EOF once input is exhausted. A final line without a newline still counts.
func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptInt asks until the answer parses as an integer
func (s *Shell) promptInt(prompt string) (int64, error) {
	s.printf("%s", prompt)
	for {
		line, err := s.readLine()
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err == nil {
			return n, nil
		}
		s.printf("Invalid number. %s", prompt)
	}
}

// promptText asks until the trimmed answer is not empty
func (s *Shell) promptText(prompt string) (string, error) {
	s.printf("%s", prompt)
	for {
		line, err := s.readLine()
		if err != nil {
			return "", err
		}
		if text := strings.TrimSpace(line); text != "" {
			return text, nil
		}
		s.printf("Input cannot be empty. %s", prompt)
	}
}

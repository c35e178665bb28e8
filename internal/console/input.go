package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Input reads validated answers from a line-oriented reader.
// Invalid answers are reported to the user and asked again.
type Input struct {
	in  io.Reader
	out io.Writer

	once  sync.Once
	lines chan scanResult
}

type scanResult struct {
	text string
	err  error
}

func NewInput(in io.Reader, out io.Writer) *Input {
	return &Input{
		in:  in,
		out: out,
	}
}

// ReadInt - asks until the answer is an integer in [minValue, maxValue].
// Returns io.EOF once the input is over.
func (that *Input) ReadInt(ctx context.Context, prompt string, minValue, maxValue int) (int, error) {
	for {
		line, err := that.readLine(ctx, prompt)
		if err != nil {
			return 0, err
		}

		value, err := parseInRange(line, minValue, maxValue)
		if errors.Is(err, apperror.ErrInvalidInput) {
			that.Notify(err.Error())
			continue
		}

		return value, err
	}
}

// ReadChoice - asks until the answer is one of allowed.
func (that *Input) ReadChoice(ctx context.Context, prompt string, allowed []string) (string, error) {
	for {
		line, err := that.readLine(ctx, prompt)
		if err != nil {
			return "", err
		}

		value := strings.TrimSpace(line)
		if slices.Contains(allowed, value) {
			return value, nil
		}

		that.Notify(fmt.Sprintf("%s: value must be one of %v", apperror.ErrInvalidInput, allowed))
	}
}

func (that *Input) Notify(message string) {
	fmt.Fprintln(that.out, message)
}

func (that *Input) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("input canceled: %w", err)
	}

	fmt.Fprintln(that.out, prompt)

	that.once.Do(that.startScanner)

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("input canceled: %w", ctx.Err())
	case result, ok := <-that.lines:
		if !ok {
			return "", io.EOF
		}
		if result.err != nil {
			return "", fmt.Errorf("failed to read input: %w", result.err)
		}
		return result.text, nil
	}
}

// startScanner - reads lines in the background so a blocked read does not hold up cancellation.
func (that *Input) startScanner() {
	that.lines = make(chan scanResult)

	go func() {
		defer close(that.lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			that.lines <- scanResult{text: scanner.Text()}
		}

		if err := scanner.Err(); err != nil {
			that.lines <- scanResult{err: err}
		}
	}()
}

func parseInRange(line string, minValue, maxValue int) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: value must be an integer", apperror.ErrInvalidInput)
	}

	if value < minValue || value > maxValue {
		return 0, fmt.Errorf("%w: value must be in range [%d, %d]", apperror.ErrInvalidInput, minValue, maxValue)
	}

	return value, nil
}

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/poiesic/faqit/imagery"
	"github.com/poiesic/faqit/respond"
)

type chatResponder interface {
	Respond(ctx context.Context, query string) (respond.Response, error)
}

// console is the interactive chat loop.
type console struct {
	responder chatResponder
	images    imagery.Resolver
	saveDir   string // Empty disables saving answer images
	in        io.Reader
	out       io.Writer
	now       func() time.Time
}

func isQuit(line string) bool {
	switch strings.ToLower(line) {
	case "quit", "exit", "q":
		return true
	}
	return false
}

func (c *console) run(ctx context.Context) error {
	if c.now == nil {
		c.now = time.Now
	}

	fmt.Fprintln(c.out, "Interactive chat (type 'quit' to exit)")
	scanner := bufio.NewScanner(c.in)
	for {
		fmt.Fprint(c.out, "\nYou: ")
		if !scanner.Scan() {
			fmt.Fprintln(c.out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if isQuit(line) {
			fmt.Fprintln(c.out, "Goodbye!")
			return nil
		}
		if line == "" {
			fmt.Fprintln(c.out, "Please enter a question!")
			continue
		}

		resp, err := c.responder.Respond(ctx, line)
		if err != nil {
			fmt.Fprintf(c.out, "Error: %v\n", err)
		}
		c.print(resp)
	}
}

func (c *console) print(resp respond.Response) {
	fmt.Fprintf(c.out, "\nAssistant (%d words):\n%s\n", resp.WordCount, resp.Text)

	if resp.ImagePath != "" {
		fmt.Fprintf(c.out, "Image: %s\n", resp.ImagePath)
		if c.saveDir != "" && c.images != nil {
			if name, err := c.saveImage(resp); err != nil {
				fmt.Fprintf(c.out, "Image not saved: %v\n", err)
			} else {
				fmt.Fprintf(c.out, "Image saved as: %s\n", name)
			}
		}
	}
	if len(resp.RelatedTopics) > 0 {
		fmt.Fprintf(c.out, "Related topics: %s\n", strings.Join(resp.RelatedTopics, ", "))
	}
	fmt.Fprintf(c.out, "Confidence: %s\n", resp.Confidence)
}

func (c *console) saveImage(resp respond.Response) (string, error) {
	img, err := c.images.Resolve(resp.ImagePath, resp.RelatedTopics)
	if err != nil {
		return "", err
	}
	name := filepath.Join(c.saveDir, fmt.Sprintf("chat_image_%d.png", c.now().Unix()))
	if err := os.WriteFile(name, img.Data, 0644); err != nil {
		return "", err
	}
	return name, nil
}

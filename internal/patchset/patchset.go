// Package patchset extracts commit messages from a git format-patch
// mbox so that every patch in a series can be checked like a commit.
package patchset

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/quotedprintable"
	"net/mail"
	"regexp"
	"strings"

	"github.com/emersion/go-mbox"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// subjectPrefixRe matches the "[PATCH]" prefix that git format-patch puts
// in front of the subject, including variants like "[PATCH v2 3/7]" and
// "[RFC PATCH 1/2]".
var subjectPrefixRe = regexp.MustCompile(`^\[[^\]]*PATCH[^\]]*\]\s*`)

// Patch is one mail of a format-patch series, reduced to the commit
// message it carries.
type Patch struct {
	Subject string // decoded subject without the [PATCH …] prefix
	Message string // reconstructed commit message: subject, empty line, body
}

// Read extracts every patch from the mbox stream, in series order.
func Read(r io.Reader) ([]Patch, error) {
	var patches []Patch
	mr := mbox.NewReader(r)
	for {
		raw, err := mr.NextMessage()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("patchset: reading mbox: %w", err)
		}
		msg, err := mail.ReadMessage(raw)
		if err != nil {
			return nil, fmt.Errorf("patchset: parsing patch %d: %w", len(patches)+1, err)
		}
		p, err := fromMail(msg)
		if err != nil {
			return nil, fmt.Errorf("patchset: decoding patch %d: %w", len(patches)+1, err)
		}
		patches = append(patches, p)
	}
	return patches, nil
}

func fromMail(msg *mail.Message) (Patch, error) {
	subject := decodeSubject(msg.Header.Get("Subject"))
	subject = subjectPrefixRe.ReplaceAllString(subject, "")

	raw, err := io.ReadAll(decodedBody(msg))
	if err != nil {
		return Patch{}, err
	}
	body := cutAtScissors(string(raw))

	message := subject
	if body != "" {
		message = subject + "\n\n" + body
	}
	return Patch{Subject: subject, Message: message}, nil
}

// decodeSubject resolves RFC 2047 encoded-words. A subject that fails to
// decode is used as-is.
func decodeSubject(subject string) string {
	decoder := &mime.WordDecoder{CharsetReader: charsetReader}
	decoded, err := decoder.DecodeHeader(subject)
	if err != nil {
		return subject
	}
	return decoded
}

// decodedBody unwraps the content-transfer-encoding and converts the
// declared charset to UTF-8.
func decodedBody(msg *mail.Message) io.Reader {
	var reader io.Reader = msg.Body
	switch cte := strings.ToLower(strings.TrimSpace(msg.Header.Get("Content-Transfer-Encoding"))); cte {
	case "base64":
		reader = base64.NewDecoder(base64.StdEncoding, msg.Body)
	case "quoted-printable":
		reader = quotedprintable.NewReader(msg.Body)
	}

	_, params, err := mime.ParseMediaType(msg.Header.Get("Content-Type"))
	if err != nil {
		return reader
	}
	if converted, err := charsetReader(params["charset"], reader); err == nil {
		return converted
	}
	return reader
}

// charsetReader converts input in the named charset to UTF-8. Empty and
// unknown charsets pass through unchanged.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	if charset == "" {
		return input, nil
	}
	enc, err := ianaindex.IANA.Encoding(strings.ToLower(charset))
	if err != nil || enc == nil {
		return input, nil
	}
	return transform.NewReader(input, enc.NewDecoder()), nil
}

// cutAtScissors drops everything from the "---" separator line on: the
// diffstat and the diff are not part of the commit message. Trailing
// blank lines go with it.
func cutAtScissors(body string) string {
	var out []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "---" {
			break
		}
		out = append(out, line)
	}
	for len(out) > 0 && strings.TrimSpace(out[len(out)-1]) == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}

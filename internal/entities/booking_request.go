package entities

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexInt accepts a JSON number or a numeric string. Booking forms send
// attendees as whatever the input element produced, so both shapes arrive in
// practice. An empty string decodes to zero and fails validation later.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		str = strings.TrimSpace(str)
		if str == "" {
			*f = 0
			return nil
		}
		n, err := strconv.Atoi(str)
		if err != nil {
			return fmt.Errorf("not a whole number: %q", str)
		}
		*f = FlexInt(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexInt(n)
	return nil
}

type CreateBookingRequest struct {
	RoomID    string  `json:"roomId"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Email     string  `json:"email"`
	Title     string  `json:"title"`
	Attendees FlexInt `json:"attendees"`
}

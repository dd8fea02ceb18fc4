package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		name     string
		pathname string
		title    string
		want     string
	}{
		{"root without title", "/", "", "Home"},
		{"root ignores title", "/", "Admitly Portal", "Home"},
		{"empty segments only", "//", "", "Home"},
		{"title wins", "/dashboard/my-students", "My Students | Admitly", "My Students | Admitly"},
		{"derived", "/dashboard/my-students", "", "Dashboard / My Students"},
		{"underscores", "/student_profile/edit", "", "Student Profile / Edit"},
		{"runs collapse", "/a--b__c", "", "A B C"},
		{"trailing slash", "/dashboard/tasks/", "", "Dashboard / Tasks"},
		{"percent decoded", "/universities/S%C3%A3o%20Paulo", "", "Universities / São Paulo"},
		{"bad escape kept raw", "/files/100%", "", "Files / 100%"},
		{"rest of word preserved", "/dashboard/faqs-and-FAQ", "", "Dashboard / Faqs And FAQ"},
		{"separator only segment dropped", "/dashboard/--/tasks", "", "Dashboard / Tasks"},
		{"leading digit kept", "/3d-printing", "", "3d Printing"},
		{"digit inside word kept", "/v2_api", "", "V2 Api"},
		{"punctuation inside word kept", "/foo.bar", "", "Foo.bar"},
		{"non-ascii first letter", "/étudiants", "", "Étudiants"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Label(tt.pathname, tt.title))
		})
	}
}

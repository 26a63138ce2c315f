package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/docstyle/pkg/langdetect"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "empty", content: "", want: "text"},
		{name: "whitespace only", content: "  \n\t\n", want: "text"},
		{name: "shebang", content: "#!/bin/bash\nset -e\n", want: "bash"},
		{name: "shell prompt", content: "$ ncli cluster info\n", want: "bash"},
		{name: "known command", content: "kubectl get pods -A\n", want: "bash"},
		{name: "ssh transcript", content: "ssh admin@host\nexit\n", want: "bash"},
		{name: "xml fragment", content: "<config>\n  <port>9440</port>\n</config>", want: "xml"},
		{name: "json object", content: `{"name": "cluster", "nodes": 3}`, want: "json"},
		{name: "sql", content: "SELECT * FROM alerts WHERE severity = 'critical';", want: "sql"},
		{name: "python def", content: "def check(value):\n    return value\n", want: "python"},
		{name: "yaml keys", content: "host: 10.0.0.1\nport: 9440\n", want: "yaml"},
		{name: "prose", content: "restart the service and wait", want: "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, langdetect.Detect([]byte(tt.content)))
		})
	}
}

package log

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

type entry struct {
	TS     string         `json:"ts"`
	Level  string         `json:"level"`
	ReqID  string         `json:"req_id,omitempty"`
	IP     string         `json:"ip,omitempty"`
	Method string         `json:"method,omitempty"`
	Path   string         `json:"path,omitempty"`
	UserID uint           `json:"user_id,omitempty"`
	Action string         `json:"action,omitempty"`
	Status int            `json:"status,omitempty"`
	Err    string         `json:"err,omitempty"`
	Fields map[string]any `json:"fields,omitempty"`
}

func write(level string, c *gin.Context, action string, err error, fields map[string]any) {
	e := entry{TS: time.Now().UTC().Format(time.RFC3339), Level: level, Action: action, Fields: fields}
	if c != nil {
		e.IP = c.ClientIP()
		e.Method = c.Request.Method
		e.Path = c.Request.URL.Path
		e.Status = c.Writer.Status()
		e.ReqID = c.GetString("request_id")
		e.UserID = c.GetUint("user_id")
	}
	if err != nil {
		e.Err = err.Error()
	}
	b, _ := json.Marshal(e)
	log.Println(string(b))
}

func Info(c *gin.Context, action string, fields map[string]any) {
	write("info", c, action, nil, fields)
}
func Audit(c *gin.Context, action string, fields map[string]any) {
	write("audit", c, action, nil, fields)
}
func Error(c *gin.Context, action string, err error, fields map[string]any) {
	write("error", c, action, err, fields)
}

package util

import (
	"fmt"
	"log"
	"net/smtp"
	"strconv"

	"github.com/xh-polaris/psych-wellness/biz/infrastructure/config"
)

// FailOnError 出现异常时中止
func FailOnError(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err.Error())
	}
}

// AlertEMail 向配置的值班邮箱发送危机预警邮件
func AlertEMail(reason string, level int64) (err error) {
	c := config.GetConfig().SMTP
	auth := smtp.PlainAuth("", c.Username, c.Password, c.Host)
	err = smtp.SendMail(c.Host+":"+strconv.Itoa(c.Port), auth, c.Username, []string{c.Alert}, []byte(fmt.Sprintf(
		"To: %s\r\n"+
			"From: xh-polaris\r\n"+
			"Content-Type: text/plain"+"; charset=UTF-8\r\n"+
			"Subject: 危机干预预警\r\n\r\n"+
			"检测到一次等级为%d的危机干预(%s), 请立即前往处理\r\n", c.Alert, level, reason)))
	return err
}

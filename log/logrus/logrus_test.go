// (c) Siemens AG 2025
//
// SPDX-License-Identifier: MIT

package logrus

import (
	"github.com/siemens/pondfinder/log"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("logrus adapter", func() {

	var hook *test.Hook

	BeforeEach(func() {
		hook = test.NewGlobal()
		oldlevel := logrus.GetLevel()
		logrus.SetLevel(logrus.TraceLevel)
		log.SetLevel(log.DebugLevel)
		DeferCleanup(func() {
			hook.Reset()
			logrus.SetLevel(oldlevel)
			log.SetLevel(log.InfoLevel)
		})
	})

	It("registers itself on import", func() {
		log.Infof("look ma, no explicit setup")
		Expect(hook.LastEntry()).NotTo(BeNil())
		Expect(hook.LastEntry().Message).To(Equal("look ma, no explicit setup"))
	})

	It("maps the levels onto their logrus counterparts", func() {
		for plevel, llevel := range map[log.Level]logrus.Level{
			log.ErrorLevel: logrus.ErrorLevel,
			log.WarnLevel:  logrus.WarnLevel,
			log.InfoLevel:  logrus.InfoLevel,
			log.DebugLevel: logrus.DebugLevel,
		} {
			hook.Reset()
			(&adapter{}).Log(plevel, "canary")
			Expect(hook.LastEntry()).NotTo(BeNil(), "level %s", plevel)
			Expect(hook.LastEntry().Level).To(Equal(llevel))
			Expect(hook.LastEntry().Message).To(Equal("canary"))
		}
	})

})

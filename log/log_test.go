// (c) Siemens AG 2025
//
// SPDX-License-Identifier: MIT

package log

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// recorder captures emitted log messages for inspection.
type recorder struct {
	msgs []string
}

func (r *recorder) Log(level Level, msg string) {
	r.msgs = append(r.msgs, level.String()+": "+msg)
}

var _ = Describe("logging facade", func() {

	var rec *recorder

	BeforeEach(func() {
		rec = &recorder{}
		SetLogger(rec)
		DeferCleanup(func() {
			SetLogger(nil)
			SetLevel(InfoLevel)
		})
	})

	It("suppresses debug messages by default", func() {
		Debugf("quiet, please")
		Infof("informative %s", "stuff")
		Warnf("worrying stuff")
		Errorf("errie stuff")
		Expect(rec.msgs).To(ConsistOf(
			"info: informative stuff",
			"warning: worrying stuff",
			"error: errie stuff",
		))
	})

	It("emits debug messages after raising the level", func() {
		SetLevel(DebugLevel)
		Debugf("noisy %d", 42)
		Expect(rec.msgs).To(ConsistOf("debug: noisy 42"))
	})

	It("emits only errors at error level", func() {
		SetLevel(ErrorLevel)
		Debugf("dropped")
		Infof("dropped")
		Warnf("dropped")
		Errorf("kept")
		Expect(rec.msgs).To(ConsistOf("error: kept"))
	})

	It("discards everything without an adapter", func() {
		SetLogger(nil)
		Expect(func() { Errorf("into the void") }).NotTo(Panic())
		Expect(rec.msgs).To(BeEmpty())
	})

	It("tells whether a level is currently enabled", func() {
		Expect(LevelEnabled(InfoLevel)).To(BeTrue())
		Expect(LevelEnabled(DebugLevel)).To(BeFalse())
		SetLevel(DebugLevel)
		Expect(LevelEnabled(DebugLevel)).To(BeTrue())
		SetLogger(nil)
		Expect(LevelEnabled(ErrorLevel)).To(BeFalse())
	})

	It("names the levels", func() {
		Expect(ErrorLevel.String()).To(Equal("error"))
		Expect(WarnLevel.String()).To(Equal("warning"))
		Expect(InfoLevel.String()).To(Equal("info"))
		Expect(DebugLevel.String()).To(Equal("debug"))
		Expect(Level(42).String()).To(Equal("invalid"))
	})

})

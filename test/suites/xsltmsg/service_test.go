package test_test

import (
	"errors"
	"sync"

	"github.com/golang/mock/gomock"
	"github.com/loopcontext/xsltmsg"
	"github.com/loopcontext/xsltmsg/catalogs"
	mock_xsltmsg "github.com/loopcontext/xsltmsg/test/mock"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func scenarioTable() map[string]string {
	return map[string]string{
		"ER_NO_NAME_ATTRIB":  "{0} must have a name attribute.",
		"ER_CANNOT_ADD":      "Can not add {0} to {1}",
		xsltmsg.BadCode:      "Parameter out of bounds",
		xsltmsg.FormatFailed: "Exception thrown during formatting",
	}
}

func mustCatalog(domain string, name string, entries map[string]string) *xsltmsg.Catalog {
	catalog, err := xsltmsg.NewCatalog(domain, name, entries)
	Expect(err).NotTo(HaveOccurred())
	return catalog
}

var _ = Describe("Message Service", func() {
	var (
		ctrl     *gomock.Controller
		store    *mock_xsltmsg.MockCatalogStore
		observer *mock_xsltmsg.MockObserver
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		store = mock_xsltmsg.NewMockCatalogStore(ctrl)
		observer = mock_xsltmsg.NewMockObserver(ctrl)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	newService := func(locale string) *xsltmsg.DefaultMessageService {
		svc, err := xsltmsg.NewMessageService(xsltmsg.Config{
			Locale:   locale,
			Store:    store,
			Observer: observer,
		})
		Expect(err).NotTo(HaveOccurred())
		return svc
	}

	It("should render a message with its arguments", func() {
		store.EXPECT().LoadCatalog("xslt", "xslt").Return(mustCatalog("xslt", "xslt", scenarioTable()), nil)

		svc := newService("C")
		text, err := svc.CreateMessage("xslt", "ER_NO_NAME_ATTRIB", []any{"xsl:key"})
		Expect(err).NotTo(HaveOccurred())
		Expect(text).To(Equal("xsl:key must have a name attribute."))
	})

	It("should render BAD_CODE and report an unknown code", func() {
		store.EXPECT().LoadCatalog("xslt", "xslt").Return(mustCatalog("xslt", "xslt", scenarioTable()), nil)
		observer.EXPECT().OnBadCode("xslt", "ER_DOES_NOT_EXIST")

		svc := newService("C")
		text, err := svc.CreateMessage("xslt", "ER_DOES_NOT_EXIST", []any{})
		Expect(text).To(Equal("Parameter out of bounds"))
		Expect(errors.Is(err, xsltmsg.ErrBadCode)).To(BeTrue())
	})

	It("should not signal a substitution failure to the caller", func() {
		store.EXPECT().LoadCatalog("xslt", "xslt").Return(mustCatalog("xslt", "xslt", scenarioTable()), nil)
		observer.EXPECT().OnFormatFailure("xslt", "ER_CANNOT_ADD", gomock.Any())

		svc := newService("C")
		text, err := svc.CreateWarning("xslt", "ER_CANNOT_ADD", []any{"foo"})
		Expect(err).NotTo(HaveOccurred())
		Expect(text).To(Equal("Exception thrown during formatting Can not add {0} to {1}"))
	})

	It("should fall back to the base catalog for an unknown locale", func() {
		gomock.InOrder(
			store.EXPECT().LoadCatalog("xslt", "xslt_fr").Return(nil, xsltmsg.ErrCatalogNotFound),
			store.EXPECT().LoadCatalog("xslt", "xslt").Return(mustCatalog("xslt", "xslt", scenarioTable()), nil),
		)
		observer.EXPECT().OnLocaleFallback("xslt", "fr_CA", "xslt")

		svc := newService("fr_CA")
		text, err := svc.CreateMessage("xslt", "ER_NO_NAME_ATTRIB", []any{"xsl:key"})
		Expect(err).NotTo(HaveOccurred())
		Expect(text).To(Equal("xsl:key must have a name attribute."))
	})

	It("should try the regional variant for zh_TW", func() {
		store.EXPECT().LoadCatalog("xpath", "xpath_zh_TW").Return(mustCatalog("xpath", "xpath_zh_TW", scenarioTable()), nil)

		svc := newService("zh_TW")
		catalog, err := svc.Catalog("xpath")
		Expect(err).NotTo(HaveOccurred())
		Expect(catalog.Name()).To(Equal("xpath_zh_TW"))
	})

	It("should resolve each domain once, even under concurrent first use", func() {
		store.EXPECT().LoadCatalog("xslt", "xslt_ja").Return(mustCatalog("xslt", "xslt_ja", scenarioTable()), nil).Times(1)
		store.EXPECT().LoadCatalog("xpath", "xpath_ja").Return(mustCatalog("xpath", "xpath_ja", scenarioTable()), nil).Times(1)

		svc := newService("ja")
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(i int) {
				defer GinkgoRecover()
				defer wg.Done()
				domain := "xslt"
				if i%2 == 1 {
					domain = "xpath"
				}
				_, err := svc.CreateMessage(domain, "ER_NO_NAME_ATTRIB", []any{"x"})
				Expect(err).NotTo(HaveOccurred())
			}(i)
		}
		wg.Wait()
	})

	It("should keep the first resolved catalog after the locale changes", func() {
		store.EXPECT().LoadCatalog("xslt", "xslt_ja").Return(mustCatalog("xslt", "xslt_ja", scenarioTable()), nil)
		store.EXPECT().LoadCatalog("xpath", "xpath_de").Return(mustCatalog("xpath", "xpath_de", scenarioTable()), nil)

		svc := newService("ja")
		_, err := svc.Catalog("xslt")
		Expect(err).NotTo(HaveOccurred())

		svc.SetLocale(xsltmsg.NewLocale("de", ""))
		catalog, err := svc.Catalog("xslt")
		Expect(err).NotTo(HaveOccurred())
		Expect(catalog.Name()).To(Equal("xslt_ja"))

		catalog, err = svc.Catalog("xpath")
		Expect(err).NotTo(HaveOccurred())
		Expect(catalog.Name()).To(Equal("xpath_de"))
	})

	It("should report an unavailable domain and retry on the next call", func() {
		store.EXPECT().LoadCatalog("xslt", "xslt_ko").Return(nil, xsltmsg.ErrCatalogNotFound).Times(2)
		store.EXPECT().LoadCatalog("xslt", "xslt").Return(nil, xsltmsg.ErrCatalogNotFound)
		store.EXPECT().LoadCatalog("xslt", "xslt").Return(mustCatalog("xslt", "xslt", scenarioTable()), nil)
		observer.EXPECT().OnCatalogUnavailable("xslt", "ko")
		observer.EXPECT().OnLocaleFallback("xslt", "ko", "xslt")

		svc := newService("ko")
		text, err := svc.CreateMessage("xslt", "ER_NO_NAME_ATTRIB", nil)
		Expect(text).To(BeEmpty())
		Expect(errors.Is(err, xsltmsg.ErrCatalogUnavailable)).To(BeTrue())

		text, err = svc.CreateMessage("xslt", "ER_NO_NAME_ATTRIB", nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(text).To(Equal("{0} must have a name attribute."))
	})

	It("should stop at a store failure other than not found", func() {
		store.EXPECT().LoadCatalog("xslt", "xslt").Return(nil, errors.New("permission denied"))
		observer.EXPECT().OnCatalogUnavailable("xslt", "")

		svc := newService("C")
		_, err := svc.CreateMessage("xslt", "ER_NO_NAME_ATTRIB", nil)
		Expect(err).To(MatchError(ContainSubstring("permission denied")))
	})

	It("should ignore a panicking observer", func() {
		store.EXPECT().LoadCatalog("xslt", "xslt").Return(mustCatalog("xslt", "xslt", scenarioTable()), nil)
		observer.EXPECT().OnBadCode("xslt", "ER_NOPE").Do(func(string, string) { panic("observer failure") })

		svc := newService("C")
		text, err := svc.CreateMessage("xslt", "ER_NOPE", nil)
		Expect(text).To(Equal("Parameter out of bounds"))
		Expect(errors.Is(err, xsltmsg.ErrBadCode)).To(BeTrue())
	})
})

var _ = Describe("Embedded catalogs", func() {
	It("should render every shipped locale of both domains", func() {
		for _, locale := range []string{"C", "de", "es", "fr", "it", "ja", "ko", "zh_CN", "zh_TW"} {
			svc, err := xsltmsg.NewMessageService(xsltmsg.Config{Locale: locale, Store: catalogs.Store()})
			Expect(err).NotTo(HaveOccurred())
			for _, domain := range []string{xsltmsg.DomainXSLT, xsltmsg.DomainXPath} {
				catalog, err := svc.Catalog(domain)
				Expect(err).NotTo(HaveOccurred())
				if locale != "C" {
					Expect(catalog.Name()).To(Equal(domain + "_" + locale))
				}
				text, err := svc.CreateMessage(domain, "NOT_A_CODE", nil)
				Expect(errors.Is(err, xsltmsg.ErrBadCode)).To(BeTrue())
				Expect(text).NotTo(BeEmpty())
			}
		}
	})
})

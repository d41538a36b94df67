// plugins/maillimit/maillimit.go
package maillimit

import (
	"fmt"
	"sync"
	"time"

	"github.com/solenne/mailwright/internal/event"
	"github.com/solenne/mailwright/internal/logger"
	"github.com/solenne/mailwright/internal/plugin"
	"github.com/solenne/mailwright/internal/utils"
)

// Ensure MailLimit implements plugin.Plugin
var _ plugin.Plugin = (*MailLimit)(nil)

// checkDelay is how long edits must settle before the exported length is
// recomputed.
const checkDelay = 300 * time.Millisecond

// MailLimit watches the exported markup length and warns the moment a mail
// grows past the in-game mail box budget. The budget comes from the editor
// configuration; a zero budget disables the plugin.
type MailLimit struct {
	api plugin.ComposerAPI // To interact with the composer

	mutex     sync.Mutex // Protects over and the debouncer
	over      bool       // Currently past the limit (warn only on crossing)
	debouncer utils.Debouncer
}

// New creates a new instance of the MailLimit plugin.
func New() plugin.Plugin {
	return &MailLimit{}
}

// Name returns the unique name of the plugin.
func (p *MailLimit) Name() string {
	return "maillimit"
}

// Initialize subscribes to every event that can change the exported length.
func (p *MailLimit) Initialize(api plugin.ComposerAPI) error {
	p.api = api
	pluginName := p.Name()

	if api.MailLimit() <= 0 {
		logger.Infof("%s: no mail limit configured, plugin idle", pluginName)
		return nil
	}

	api.SubscribeEvent(event.TypeDocumentModified, p.handleChange)
	api.SubscribeEvent(event.TypeFormatChanged, p.handleChange)
	api.SubscribeEvent(event.TypeDocumentReset, p.handleChange)

	if err := api.RegisterCommand("limit", p.executeLimit); err != nil {
		return fmt.Errorf("failed to register 'limit' command: %w", err)
	}

	logger.Infof("%s initialized. Budget: %d chars", pluginName, api.MailLimit())
	return nil
}

// Shutdown cancels any pending length check.
func (p *MailLimit) Shutdown() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.debouncer.Stop()
	return nil
}

// handleChange schedules a deferred length check after the edit settles.
func (p *MailLimit) handleChange(e event.Event) bool {
	p.mutex.Lock()
	p.debouncer.Debounce(checkDelay, p.checkLength)
	p.mutex.Unlock()
	return false // Not consumed
}

// checkLength warns once when the exported markup crosses the budget and
// re-arms once it drops back under.
func (p *MailLimit) checkLength() {
	if p.api == nil {
		return
	}

	limit := p.api.MailLimit()
	if limit <= 0 {
		return
	}
	exported := p.api.ExportedLength()

	p.mutex.Lock()
	wasOver := p.over
	p.over = exported > limit
	crossed := p.over && !wasOver
	p.mutex.Unlock()

	if crossed {
		logger.Infof("%s: exported markup is %d chars, budget is %d", p.Name(), exported, limit)
		p.api.SetStatusMessage("Mail too long: %d of %d chars (the mail box will reject it)", exported, limit)
	}
}

// executeLimit is the function called when the :limit command runs.
func (p *MailLimit) executeLimit(args []string) error {
	if p.api == nil {
		return fmt.Errorf("maillimit plugin not initialized with API")
	}

	exported := p.api.ExportedLength()
	limit := p.api.MailLimit()
	if exported > limit {
		p.api.SetStatusMessage("Over budget: %d of %d chars", exported, limit)
	} else {
		p.api.SetStatusMessage("Exported size: %d of %d chars", exported, limit)
	}
	return nil
}

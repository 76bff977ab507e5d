package website

import "github.com/testingfly/website/views"

// Resource is a curated link stored in SQLite and rendered on the
// resources page.
type Resource = views.Resource

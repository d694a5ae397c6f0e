package spec

import "fmt"

// NextVersion maps the number of existing versions for a project to the next
// version string. Strictly monotonic per project as long as the count is read
// under the same lock/transaction as the insert.
func NextVersion(existing int) string {
	return fmt.Sprintf("1.0.%d", existing)
}

// DefaultTitle is used when the generation result carries no explicit title.
func DefaultTitle(projectName string) string {
	return projectName + " Spec"
}

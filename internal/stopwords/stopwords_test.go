package stopwords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_BaseAndUITiers(t *testing.T) {
	set := Resolve("", "")

	assert.True(t, set.Contains("the"))
	assert.True(t, set.Contains("apply"))
	assert.True(t, set.Contains("responsibilities"))
	assert.False(t, set.Contains("python"))
	assert.Empty(t, set.Company())
}

func TestResolve_ExplicitCompanyVariants(t *testing.T) {
	set := Resolve("Acme Data Systems", "")

	assert.Equal(t, "Acme Data Systems", set.Company())
	assert.True(t, set.Contains("acme data systems"))
	assert.True(t, set.Contains("acme"))
	assert.True(t, set.Contains("data"))
	assert.True(t, set.Contains("systems"))
	assert.True(t, set.Contains("ltd"))
	assert.True(t, set.Contains("inc"))
}

func TestResolve_ShortWordsSkipped(t *testing.T) {
	set := Resolve("Go Co", "")
	// Words of two characters or fewer are not expanded individually.
	assert.False(t, set.Contains("go"))
	assert.True(t, set.Contains("go co"))
}

func TestResolve_DetectsCompanyFromJD(t *testing.T) {
	set := Resolve("", "Great role.\nCompany: Acme Corp\nMore text follows")

	assert.Equal(t, "Acme Corp", set.Company())
	assert.True(t, set.Contains("acme"))
	assert.True(t, set.Contains("corp"))
}

func TestResolve_NoDetectionDegrades(t *testing.T) {
	set := Resolve("", "a job description without any company mention patterns")
	assert.Empty(t, set.Company())
	assert.Empty(t, set.DynamicWords())
	assert.True(t, set.Contains("the"))
}

func TestDetectCompany_RulePriority(t *testing.T) {
	// The labelled rule wins even when a later rule would also match.
	jd := "Company: First Corp\nSecond Corp is seeking engineers"
	det := DetectCompany(jd)

	assert.True(t, det.Found)
	assert.Equal(t, "First Corp", det.Name)
	assert.Equal(t, "labelled", det.Rule)
}

func TestDetectCompany_JoinAtPattern(t *testing.T) {
	det := DetectCompany("Join Beta Analytics as a senior engineer")
	assert.True(t, det.Found)
	assert.Equal(t, "Beta Analytics", det.Name)
}

func TestDetectCompany_IsSeekingPattern(t *testing.T) {
	det := DetectCompany("Gamma Robotics is seeking a platform engineer")
	assert.True(t, det.Found)
	assert.Equal(t, "Gamma Robotics", det.Name)
}

func TestDetectCompany_RejectsLongCaptures(t *testing.T) {
	det := DetectCompany("Join The Very Long Name Of Something Here as an engineer")
	assert.False(t, det.Found)
}

func TestFilter(t *testing.T) {
	set := Resolve("Citi", "")
	out := set.Filter([]string{"citi", "python", "the", "a", "aws"})
	assert.Equal(t, []string{"python", "aws"}, out)
}

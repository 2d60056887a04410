package constants

const (
	// BinaryName is the name of the command line binary.
	BinaryName = "bucketeer"
	// BinaryVersion is the version of the binary.
	BinaryVersion = "v0.1.0"
	// LogFileName is the name of the log file inside the configured log directory.
	LogFileName = "bucketeer.log"
	// DefaultBucketNumber is the number of buckets a weighted coverage is split into.
	DefaultBucketNumber = 50
	// DefaultMaxSubprojectsPerBucket caps how many subprojects are aggregated into one bucket.
	DefaultMaxSubprojectsPerBucket = 10
	// DefaultVersionMatrixSize is the number of major versions cross version coverages run against.
	DefaultVersionMatrixSize = 6
	// UnknownSubproject is the history key for classes that could not be attributed.
	UnknownSubproject = "UNKNOWN"
	// UnitTestSourceSet is the source set of unit tests, run unsplit in the last fragment.
	UnitTestSourceSet = "test"
	// MultiVersionTaskName is the test task that only runs in the last fragment of a subproject.
	MultiVersionTaskName = "integMultiVersionTest"
	// CrossVersionTaskSuffix is the suffix of cross version test task names.
	CrossVersionTaskSuffix = "CrossVersionTest"
	// PrepareTestClassesStep is the name of the step writing the filter file.
	PrepareTestClassesStep = "PREPARE_TEST_CLASSES"
	// FilterFileSuffix is appended to the inclusion mode to name the filter file.
	FilterFileSuffix = "-test-classes.properties"
	// DefaultBuildDir is the directory the filter file is written to.
	DefaultBuildDir = "build"
	// IncludeTestClassesProperty marks a job running only the classes of its filter file.
	IncludeTestClassesProperty = "includeTestClasses"
	// ExcludeTestClassesProperty marks a job running all classes but those of its filter file.
	ExcludeTestClassesProperty = "excludeTestClasses"
	// OnlyTestMajorVersionProperty restricts cross version tests to one major version.
	OnlyTestMajorVersionProperty = "onlyTestMajorVersion"
	// WholeSuiteSuffix is the job id suffix of a whole-suite bucket.
	WholeSuiteSuffix = "all"
	// VersionBucketPrefix is the job id prefix of a version-matrix bucket.
	VersionBucketPrefix = "gradle"
	// JobIndexFileName lists the emitted job ids in order.
	JobIndexFileName = "index.json"
	// DefaultMaxRetries is the number of attempts for blob downloads.
	DefaultMaxRetries = 3
	// DefaultRetryDelay is the base delay between blob download attempts.
	DefaultRetryDelay = 1e9 // 1 second, value is int64 nanoseconds due to issue in viper.
	// DefaultMaxJitter is the maximum random jitter added to the retry delay.
	DefaultMaxJitter = 5e8
)

// History sources
const (
	HistorySourceFile  = "file"
	HistorySourceAzure = "azure"
)

// Output formats
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// All possible env values
const (
	Dev   = "dev"
	Prod  = "prod"
	Stage = "stage"
)

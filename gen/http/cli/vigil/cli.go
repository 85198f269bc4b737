// Code generated by goa v3.24.1, DO NOT EDIT.
//
// vigil HTTP client CLI support package
//
// Command:
// $ goa gen vigil/design

package cli

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	camerasc "vigil/gen/http/cameras/client"
	healthc "vigil/gen/http/health/client"
	incidentsc "vigil/gen/http/incidents/client"
	systemc "vigil/gen/http/system/client"

	goahttp "goa.design/goa/v3/http"
	goa "goa.design/goa/v3/pkg"
)

// UsageCommands returns the set of commands and sub-commands using the format
//
//	command (subcommand1|subcommand2|...)
func UsageCommands() []string {
	return []string{
		"health (healthz|readyz)",
		"cameras (list|get|create|delete|stats)",
		"incidents (list|get|review|close|stats)",
		"system (status|reset-throttle)",
	}
}

// UsageExamples produces an example of a valid invocation of the CLI tool.
func UsageExamples() string {
	return os.Args[0] + " " + "health healthz" + "\n" +
		os.Args[0] + " " + "cameras list" + "\n" +
		os.Args[0] + " " + "incidents list --status \"false_alarm\" --camera-id \"Necessitatibus dolorum dolorem distinctio.\" --page 759376451046700058 --page-size 35" + "\n" +
		os.Args[0] + " " + "system status" + "\n" +
		""
}

// ParseEndpoint returns the endpoint and payload as specified on the command
// line.
func ParseEndpoint(
	scheme, host string,
	doer goahttp.Doer,
	enc func(*http.Request) goahttp.Encoder,
	dec func(*http.Response) goahttp.Decoder,
	restore bool,
) (goa.Endpoint, any, error) {
	var (
		healthFlags = flag.NewFlagSet("health", flag.ContinueOnError)

		healthHealthzFlags = flag.NewFlagSet("healthz", flag.ExitOnError)

		healthReadyzFlags = flag.NewFlagSet("readyz", flag.ExitOnError)

		camerasFlags = flag.NewFlagSet("cameras", flag.ContinueOnError)

		camerasListFlags = flag.NewFlagSet("list", flag.ExitOnError)

		camerasGetFlags  = flag.NewFlagSet("get", flag.ExitOnError)
		camerasGetIDFlag = camerasGetFlags.String("id", "REQUIRED", "Camera ID")

		camerasCreateFlags    = flag.NewFlagSet("create", flag.ExitOnError)
		camerasCreateBodyFlag = camerasCreateFlags.String("body", "REQUIRED", "")

		camerasDeleteFlags  = flag.NewFlagSet("delete", flag.ExitOnError)
		camerasDeleteIDFlag = camerasDeleteFlags.String("id", "REQUIRED", "Camera ID")

		camerasStatsFlags  = flag.NewFlagSet("stats", flag.ExitOnError)
		camerasStatsIDFlag = camerasStatsFlags.String("id", "REQUIRED", "Camera ID")

		incidentsFlags = flag.NewFlagSet("incidents", flag.ContinueOnError)

		incidentsListFlags        = flag.NewFlagSet("list", flag.ExitOnError)
		incidentsListStatusFlag   = incidentsListFlags.String("status", "", "")
		incidentsListCameraIDFlag = incidentsListFlags.String("camera-id", "", "")
		incidentsListPageFlag     = incidentsListFlags.String("page", "1", "")
		incidentsListPageSizeFlag = incidentsListFlags.String("page-size", "20", "")

		incidentsGetFlags  = flag.NewFlagSet("get", flag.ExitOnError)
		incidentsGetIDFlag = incidentsGetFlags.String("id", "REQUIRED", "Incident ID")

		incidentsReviewFlags    = flag.NewFlagSet("review", flag.ExitOnError)
		incidentsReviewBodyFlag = incidentsReviewFlags.String("body", "REQUIRED", "")
		incidentsReviewIDFlag   = incidentsReviewFlags.String("id", "REQUIRED", "Incident ID")

		incidentsCloseFlags  = flag.NewFlagSet("close", flag.ExitOnError)
		incidentsCloseIDFlag = incidentsCloseFlags.String("id", "REQUIRED", "Incident ID")

		incidentsStatsFlags = flag.NewFlagSet("stats", flag.ExitOnError)

		systemFlags = flag.NewFlagSet("system", flag.ContinueOnError)

		systemStatusFlags = flag.NewFlagSet("status", flag.ExitOnError)

		systemResetThrottleFlags          = flag.NewFlagSet("reset-throttle", flag.ExitOnError)
		systemResetThrottleIncidentIDFlag = systemResetThrottleFlags.String("incident-id", "", "")
	)
	healthFlags.Usage = healthUsage
	healthHealthzFlags.Usage = healthHealthzUsage
	healthReadyzFlags.Usage = healthReadyzUsage

	camerasFlags.Usage = camerasUsage
	camerasListFlags.Usage = camerasListUsage
	camerasGetFlags.Usage = camerasGetUsage
	camerasCreateFlags.Usage = camerasCreateUsage
	camerasDeleteFlags.Usage = camerasDeleteUsage
	camerasStatsFlags.Usage = camerasStatsUsage

	incidentsFlags.Usage = incidentsUsage
	incidentsListFlags.Usage = incidentsListUsage
	incidentsGetFlags.Usage = incidentsGetUsage
	incidentsReviewFlags.Usage = incidentsReviewUsage
	incidentsCloseFlags.Usage = incidentsCloseUsage
	incidentsStatsFlags.Usage = incidentsStatsUsage

	systemFlags.Usage = systemUsage
	systemStatusFlags.Usage = systemStatusUsage
	systemResetThrottleFlags.Usage = systemResetThrottleUsage

	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, nil, err
	}

	if flag.NArg() < 2 { // two non flag args are required: SERVICE and ENDPOINT (aka COMMAND)
		return nil, nil, fmt.Errorf("not enough arguments")
	}

	var (
		svcn string
		svcf *flag.FlagSet
	)
	{
		svcn = flag.Arg(0)
		switch svcn {
		case "health":
			svcf = healthFlags
		case "cameras":
			svcf = camerasFlags
		case "incidents":
			svcf = incidentsFlags
		case "system":
			svcf = systemFlags
		default:
			return nil, nil, fmt.Errorf("unknown service %q", svcn)
		}
	}
	if err := svcf.Parse(flag.Args()[1:]); err != nil {
		return nil, nil, err
	}

	var (
		epn string
		epf *flag.FlagSet
	)
	{
		epn = svcf.Arg(0)
		switch svcn {
		case "health":
			switch epn {
			case "healthz":
				epf = healthHealthzFlags

			case "readyz":
				epf = healthReadyzFlags

			}

		case "cameras":
			switch epn {
			case "list":
				epf = camerasListFlags

			case "get":
				epf = camerasGetFlags

			case "create":
				epf = camerasCreateFlags

			case "delete":
				epf = camerasDeleteFlags

			case "stats":
				epf = camerasStatsFlags

			}

		case "incidents":
			switch epn {
			case "list":
				epf = incidentsListFlags

			case "get":
				epf = incidentsGetFlags

			case "review":
				epf = incidentsReviewFlags

			case "close":
				epf = incidentsCloseFlags

			case "stats":
				epf = incidentsStatsFlags

			}

		case "system":
			switch epn {
			case "status":
				epf = systemStatusFlags

			case "reset-throttle":
				epf = systemResetThrottleFlags

			}

		}
	}
	if epf == nil {
		return nil, nil, fmt.Errorf("unknown %q endpoint %q", svcn, epn)
	}

	// Parse endpoint flags if any
	if svcf.NArg() > 1 {
		if err := epf.Parse(svcf.Args()[1:]); err != nil {
			return nil, nil, err
		}
	}

	var (
		data     any
		endpoint goa.Endpoint
		err      error
	)
	{
		switch svcn {
		case "health":
			c := healthc.NewClient(scheme, host, doer, enc, dec, restore)
			switch epn {
			case "healthz":
				endpoint = c.Healthz()
			case "readyz":
				endpoint = c.Readyz()
			}
		case "cameras":
			c := camerasc.NewClient(scheme, host, doer, enc, dec, restore)
			switch epn {
			case "list":
				endpoint = c.List()
			case "get":
				endpoint = c.Get()
				data, err = camerasc.BuildGetPayload(*camerasGetIDFlag)
			case "create":
				endpoint = c.Create()
				data, err = camerasc.BuildCreatePayload(*camerasCreateBodyFlag)
			case "delete":
				endpoint = c.Delete()
				data, err = camerasc.BuildDeletePayload(*camerasDeleteIDFlag)
			case "stats":
				endpoint = c.Stats()
				data, err = camerasc.BuildStatsPayload(*camerasStatsIDFlag)
			}
		case "incidents":
			c := incidentsc.NewClient(scheme, host, doer, enc, dec, restore)
			switch epn {
			case "list":
				endpoint = c.List()
				data, err = incidentsc.BuildListPayload(*incidentsListStatusFlag, *incidentsListCameraIDFlag, *incidentsListPageFlag, *incidentsListPageSizeFlag)
			case "get":
				endpoint = c.Get()
				data, err = incidentsc.BuildGetPayload(*incidentsGetIDFlag)
			case "review":
				endpoint = c.Review()
				data, err = incidentsc.BuildReviewPayload(*incidentsReviewBodyFlag, *incidentsReviewIDFlag)
			case "close":
				endpoint = c.Close()
				data, err = incidentsc.BuildClosePayload(*incidentsCloseIDFlag)
			case "stats":
				endpoint = c.Stats()
			}
		case "system":
			c := systemc.NewClient(scheme, host, doer, enc, dec, restore)
			switch epn {
			case "status":
				endpoint = c.Status()
			case "reset-throttle":
				endpoint = c.ResetThrottle()
				data, err = systemc.BuildResetThrottlePayload(*systemResetThrottleIncidentIDFlag)
			}
		}
	}
	if err != nil {
		return nil, nil, err
	}

	return endpoint, data, nil
}

// healthUsage displays the usage of the health command and its subcommands.
func healthUsage() {
	fmt.Fprintln(os.Stderr, `Health check endpoints for Kubernetes probes`)
	fmt.Fprintf(os.Stderr, "Usage:\n    %s [globalflags] health COMMAND [flags]\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "COMMAND:")
	fmt.Fprintln(os.Stderr, `    healthz: Liveness probe endpoint - indicates if the service is alive`)
	fmt.Fprintln(os.Stderr, `    readyz: Readiness probe endpoint - indicates if the detector backend is reachable`)
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Additional help:")
	fmt.Fprintf(os.Stderr, "    %s health COMMAND --help\n", os.Args[0])
}
func healthHealthzUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] health healthz", os.Args[0])
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Liveness probe endpoint - indicates if the service is alive`)

	// Flags list

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "health healthz")
}

func healthReadyzUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] health readyz", os.Args[0])
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Readiness probe endpoint - indicates if the detector backend is reachable`)

	// Flags list

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "health readyz")
}

// camerasUsage displays the usage of the cameras command and its subcommands.
func camerasUsage() {
	fmt.Fprintln(os.Stderr, `Camera registry and capture management`)
	fmt.Fprintf(os.Stderr, "Usage:\n    %s [globalflags] cameras COMMAND [flags]\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "COMMAND:")
	fmt.Fprintln(os.Stderr, `    list: List all registered cameras`)
	fmt.Fprintln(os.Stderr, `    get: Get camera by ID`)
	fmt.Fprintln(os.Stderr, `    create: Register a camera and start its capture`)
	fmt.Fprintln(os.Stderr, `    delete: Stop and remove a camera`)
	fmt.Fprintln(os.Stderr, `    stats: Get pipeline counters for a camera`)
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Additional help:")
	fmt.Fprintf(os.Stderr, "    %s cameras COMMAND --help\n", os.Args[0])
}
func camerasListUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] cameras list", os.Args[0])
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `List all registered cameras`)

	// Flags list

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "cameras list")
}

func camerasGetUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] cameras get", os.Args[0])
	fmt.Fprint(os.Stderr, " -id STRING")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Get camera by ID`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -id STRING: Camera ID`)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "cameras get --id \"Quibusdam alias delectus qui impedit.\"")
}

func camerasCreateUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] cameras create", os.Args[0])
	fmt.Fprint(os.Stderr, " -body JSON")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Register a camera and start its capture`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -body JSON: `)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "cameras create --body '{\n      \"capture_fps\": 7833769506204550365,\n      \"detect_fps\": 5533969530810084324,\n      \"id\": \"Quis nisi vero.\",\n      \"location\": \"Doloribus quis.\",\n      \"name\": \"Amet voluptas ut.\",\n      \"priority\": 1,\n      \"source\": \"Dolorum tenetur quia dolore cupiditate dignissimos qui.\"\n   }'")
}

func camerasDeleteUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] cameras delete", os.Args[0])
	fmt.Fprint(os.Stderr, " -id STRING")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Stop and remove a camera`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -id STRING: Camera ID`)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "cameras delete --id \"Et molestiae sit voluptas nesciunt deleniti.\"")
}

func camerasStatsUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] cameras stats", os.Args[0])
	fmt.Fprint(os.Stderr, " -id STRING")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Get pipeline counters for a camera`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -id STRING: Camera ID`)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "cameras stats --id \"Voluptatibus at et.\"")
}

// incidentsUsage displays the usage of the incidents command and its
// subcommands.
func incidentsUsage() {
	fmt.Fprintln(os.Stderr, `Incident listing, review and statistics`)
	fmt.Fprintf(os.Stderr, "Usage:\n    %s [globalflags] incidents COMMAND [flags]\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "COMMAND:")
	fmt.Fprintln(os.Stderr, `    list: List incidents, newest first`)
	fmt.Fprintln(os.Stderr, `    get: Get an incident with its alerts`)
	fmt.Fprintln(os.Stderr, `    review: Apply an operator decision to an incident`)
	fmt.Fprintln(os.Stderr, `    close: Manually close an active incident`)
	fmt.Fprintln(os.Stderr, `    stats: Aggregate incident counters`)
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Additional help:")
	fmt.Fprintf(os.Stderr, "    %s incidents COMMAND --help\n", os.Args[0])
}
func incidentsListUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] incidents list", os.Args[0])
	fmt.Fprint(os.Stderr, " -status STRING")
	fmt.Fprint(os.Stderr, " -camera-id STRING")
	fmt.Fprint(os.Stderr, " -page INT")
	fmt.Fprint(os.Stderr, " -page-size INT")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `List incidents, newest first`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -status STRING: `)
	fmt.Fprintln(os.Stderr, `    -camera-id STRING: `)
	fmt.Fprintln(os.Stderr, `    -page INT: `)
	fmt.Fprintln(os.Stderr, `    -page-size INT: `)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "incidents list --status \"false_alarm\" --camera-id \"Necessitatibus dolorum dolorem distinctio.\" --page 759376451046700058 --page-size 35")
}

func incidentsGetUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] incidents get", os.Args[0])
	fmt.Fprint(os.Stderr, " -id STRING")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Get an incident with its alerts`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -id STRING: Incident ID`)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "incidents get --id \"Rerum et.\"")
}

func incidentsReviewUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] incidents review", os.Args[0])
	fmt.Fprint(os.Stderr, " -body JSON")
	fmt.Fprint(os.Stderr, " -id STRING")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Apply an operator decision to an incident`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -body JSON: `)
	fmt.Fprintln(os.Stderr, `    -id STRING: Incident ID`)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "incidents review --body '{\n      \"decision\": \"false_alarm\",\n      \"notes\": \"Ad earum.\",\n      \"reviewed_by\": \"Natus eum qui quidem distinctio.\"\n   }' --id \"Et qui autem eligendi.\"")
}

func incidentsCloseUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] incidents close", os.Args[0])
	fmt.Fprint(os.Stderr, " -id STRING")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Manually close an active incident`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -id STRING: Incident ID`)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "incidents close --id \"Qui quis deleniti minima nihil ullam ipsum.\"")
}

func incidentsStatsUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] incidents stats", os.Args[0])
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Aggregate incident counters`)

	// Flags list

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "incidents stats")
}

// systemUsage displays the usage of the system command and its subcommands.
func systemUsage() {
	fmt.Fprintln(os.Stderr, `System status and monitoring`)
	fmt.Fprintf(os.Stderr, "Usage:\n    %s [globalflags] system COMMAND [flags]\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "COMMAND:")
	fmt.Fprintln(os.Stderr, `    status: Get overall pipeline status`)
	fmt.Fprintln(os.Stderr, `    reset-throttle: Clear alert throttle counters for one incident or for all of them`)
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Additional help:")
	fmt.Fprintf(os.Stderr, "    %s system COMMAND --help\n", os.Args[0])
}
func systemStatusUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] system status", os.Args[0])
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Get overall pipeline status`)

	// Flags list

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "system status")
}

func systemResetThrottleUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] system reset-throttle", os.Args[0])
	fmt.Fprint(os.Stderr, " -incident-id STRING")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Clear alert throttle counters for one incident or for all of them`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -incident-id STRING: `)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "system reset-throttle --incident-id \"Dolore corrupti.\"")
}

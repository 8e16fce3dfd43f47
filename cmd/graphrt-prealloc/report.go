// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
)

func writeJSON(w io.Writer, reports []*passReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

func writeText(w io.Writer, reports []*passReport) error {
	for _, rep := range reports {
		fmt.Fprintf(w, "%s (run %s, alignment %d)\n", rep.Manifest, rep.Run, rep.Alignment)

		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "SLOT\tNAME\tTYPE\tDIMS\tSTRIDES\tBYTES\tLOCATION\tXXH3")
		for _, s := range rep.Slots {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
				s.Slot, s.Name, s.Type, joinInts(s.Dims), joinInts(s.Strides), s.Bytes, s.Location, s.Digest)
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		for _, p := range rep.Planned {
			fmt.Fprintf(w, "planned %d bytes at %s\n", p.Bytes, p.Location)
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func joinInts(vs []int64) string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = strconv.FormatInt(v, 10)
	}
	return "[" + strings.Join(out, ",") + "]"
}

/*
Package platform defines the closed set of container platforms that a process
can be classified to live in: a Kubernetes pod (further differentiated by the
runtime serving the pod), a standalone container under one of several
well-known container engines, or no container at all.

Platform values are comparable and intentionally cannot be constructed from
arbitrary category/runtime pairs; consumers always work with the predeclared
values, such as [KubernetesCRIO], [InDocker], or [OnHost]. The zero Platform
is [OnHost], so an uninitialized classification already is the correct
worst-case answer.
*/
package platform

/*
Package probe defines the plugin interface between the pond finder and its
platform probe plugins, as well as the “pond” through which probes sense the
process's surroundings.

The sub-package “all” pulls in all platform probe plugins that are supported
out-of-the-box of this module. The “all” package in turn is imported by the
toplevel “pondfinder” package to ensure that the full probe set is always
included.

The individual platform-specific probe plugins are then implemented in the
other sub-packages: for instance, the “kubernetes” and “moby” sub-packages.

Probes never decide the final platform classification on their own: they
only gather evidence. Weighing the evidence of multiple probes against each
other, in a fixed order of precedence, is the sole business of the toplevel
pondfinder package.
*/
package probe
